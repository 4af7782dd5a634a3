package services

import (
	"strings"

	"farmacia/internal/domain"
	"farmacia/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the demo credentials and binds them to the sid cookie.
// Login matches email case-insensitively and returns the stored row, whose
// Email keys the user's cart and reservas.
type AuthService struct {
	Users *repos.UserRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if sid == "" || email == "" || password == "" {
		return nil, ErrBadCreds
	}
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)); err != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout forgets whoever sid belonged to. An empty sid has nothing to unbind.
func (s *AuthService) Logout(sid string) error {
	if sid == "" {
		return nil
	}
	return s.Users.UnbindSession(sid)
}

// CurrentUser returns the user bound to sid, or ErrNoSession.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	if sid == "" {
		return nil, ErrNoSession
	}
	u, err := s.Users.SessionUser(sid)
	if err != nil {
		return nil, ErrNoSession
	}
	return u, nil
}
