package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken()
	assert.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := GenerateSecureToken()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
