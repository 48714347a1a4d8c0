package auth

import (
	"fmt"
	"strings"

	"ubizy/internal/logger"
	"ubizy/internal/models"
)

// Session holds the current user in memory only. There is no real
// credential check behind it: any login or signup fabricates a user.
type Session struct {
	user *models.User
}

func NewSession() *Session {
	return &Session{}
}

// Login accepts any non-empty email and fabricates a user for it.
func (s *Session) Login(email, password string) (models.User, error) {
	if strings.TrimSpace(email) == "" {
		return models.User{}, fmt.Errorf("email cannot be empty")
	}
	user := models.User{
		ID:    "1",
		Name:  "John Doe",
		Email: email,
	}
	s.user = &user
	logger.Debug("Session started", "email", email)
	return user, nil
}

// Signup behaves like Login but keeps the supplied name.
func (s *Session) Signup(name, email, password string) (models.User, error) {
	if strings.TrimSpace(email) == "" {
		return models.User{}, fmt.Errorf("email cannot be empty")
	}
	user := models.User{
		ID:    "1",
		Name:  name,
		Email: email,
	}
	s.user = &user
	logger.Debug("Session started", "email", email)
	return user, nil
}

// Logout clears the session.
func (s *Session) Logout() {
	s.user = nil
}

// User returns the current user, if any.
func (s *Session) User() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	return s.user != nil
}
