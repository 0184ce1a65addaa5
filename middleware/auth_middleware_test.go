package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupGuardRouter(t *testing.T) *gin.Engine {
	jwtKey = []byte("test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(), StaffOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.PUT("/users/:id", JWTAuthMiddleware(), UserOrStaff(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGuardRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStaffOnly_AllowsStaff(t *testing.T) {
	r := setupGuardRouter(t)

	token, err := GenerateToken(7, "alice", true, time.Hour)
	assert.NoError(t, err)

	w := doGuardRequest(r, "GET", "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffOnly_RejectsNonStaff(t *testing.T) {
	r := setupGuardRouter(t)

	token, _ := GenerateToken(7, "alice", false, time.Hour)

	w := doGuardRequest(r, "GET", "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserOrStaff_AllowsSelf(t *testing.T) {
	r := setupGuardRouter(t)

	token, _ := GenerateToken(7, "alice", false, time.Hour)

	w := doGuardRequest(r, "PUT", "/users/7", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserOrStaff_AllowsStaffOnOthers(t *testing.T) {
	r := setupGuardRouter(t)

	token, _ := GenerateToken(7, "alice", true, time.Hour)

	w := doGuardRequest(r, "PUT", "/users/9", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserOrStaff_RejectsOtherUsers(t *testing.T) {
	r := setupGuardRouter(t)

	token, _ := GenerateToken(7, "alice", false, time.Hour)

	w := doGuardRequest(r, "PUT", "/users/9", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
