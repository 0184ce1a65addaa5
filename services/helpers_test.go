package services

import "sync"

func ptrString(s string) *string { return &s }

func ptrInt(i int) *int { return &i }

func ptrFloat(f float64) *float64 { return &f }

// recordingMailer satisfies mail.Mailer and records sends so tests can
// assert on fire-and-forget email delivery.
type recordingMailer struct {
	mu         sync.Mutex
	activation []string
	resets     []string
}

func (m *recordingMailer) SendActivationEmail(to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activation = append(m.activation, to)
	return nil
}

func (m *recordingMailer) SendPasswordResetEmail(to, username, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, to)
	return nil
}
