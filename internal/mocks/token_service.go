// Package mocks provides hand-written test doubles for store and service
// interfaces.
package mocks

import (
	"context"

	"github.com/phrazzld/bloglist-api/internal/domain"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	// IssueFn allows test cases to mock the Issue behavior
	IssueFn func(ctx context.Context, user *domain.User) (string, error)

	// VerifyFn allows test cases to mock the Verify behavior
	VerifyFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token     string
	IssueErr  error
	Claims    *auth.Claims
	VerifyErr error
}

var _ auth.TokenService = (*MockTokenService)(nil)

// Issue implements the auth.TokenService interface.
func (m *MockTokenService) Issue(ctx context.Context, user *domain.User) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, user)
	}
	return m.Token, m.IssueErr
}

// Verify implements the auth.TokenService interface.
func (m *MockTokenService) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, tokenString)
	}
	return m.Claims, m.VerifyErr
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	CompareErr error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	return m.CompareErr
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	Digest  string
	HashErr error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if m.Digest != "" {
		return m.Digest, nil
	}
	return "hashed:" + password, nil
}
