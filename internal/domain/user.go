package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the bloglist service.
// Usernames double as login handles and are validated as email addresses.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext password, present only during registration
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	Disabled       bool      `json:"disabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, display name and
// plaintext password. It generates a new UUID and sets timestamps.
// The caller is responsible for hashing the password before storage.
func NewUser(username, name, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Name:      name,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns a domain validation error if any field fails.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if len(u.Username) < 3 {
		return ErrUsernameTooShort
	}

	if !validUsername(u.Username) {
		return ErrInvalidUsername
	}

	if u.Password != "" {
		if len(u.Password) < 3 {
			return ErrPasswordTooShort
		}
	} else if u.HashedPassword == "" {
		// Users loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// validUsername checks that the username is shaped like an email address:
// a local part, an @, and a domain containing an interior dot.
func validUsername(username string) bool {
	at := strings.Index(username, "@")
	if at <= 0 || at == len(username)-1 {
		return false
	}

	domain := username[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// UserWithBlogs pairs a user with summaries of the blogs they own.
type UserWithBlogs struct {
	User
	Blogs []*Blog `json:"blogs"`
}
