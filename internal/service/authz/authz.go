// Package authz decides whether a resolved identity may mutate a resource.
package authz

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotOwner is returned when the acting identity does not own the target
// resource. Routes translate this per their contract: 401 for blog deletion,
// 403 for reading list updates.
var ErrNotOwner = errors.New("resource is not owned by the caller")

// CanModify authorizes a mutating action on a resource with the given owner.
// The rule is strict equality of identities; there is no admin override.
func CanModify(userID, ownerID uuid.UUID) error {
	if userID == uuid.Nil || userID != ownerID {
		return ErrNotOwner
	}
	return nil
}
