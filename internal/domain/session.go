package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session records a token issued at login. The table is append-only:
// the only mutation ever applied is flipping Active to false, which
// revokes the token at the identity resolver.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Token     string    `json:"-"` // Never serialize issued tokens back out
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates an active session binding a token to a user.
func NewSession(userID uuid.UUID, token string) (*Session, error) {
	now := time.Now().UTC()
	session := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if s.Token == "" {
		return ErrEmptyToken
	}

	return nil
}
