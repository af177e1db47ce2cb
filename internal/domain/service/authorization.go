package service

import (
	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"

	"github.com/google/uuid"
)

// Ownership checks gating mutating operations. Both are pure decision
// functions with no side effects and must be evaluated before any repository
// write. A nil principal (anonymous request) is always denied.

// RequireOwner allows the operation only when the principal is the recorded
// owner of the target resource.
func RequireOwner(principal *entity.Principal, ownerID uuid.UUID) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("anonymous caller cannot mutate resources")
	}
	if principal.UserID != ownerID {
		return domainerrors.ErrForbidden.WrapMessage("caller is not the resource owner")
	}

	return nil
}

// RequireSelf allows the operation only when the principal acts on their own
// user record.
func RequireSelf(principal *entity.Principal, userID uuid.UUID) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("anonymous caller cannot act on a user")
	}
	if principal.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("caller may only act on their own account")
	}

	return nil
}
