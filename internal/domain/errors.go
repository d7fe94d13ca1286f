package domain

import "errors"

// Workflow error taxonomy. Services return these sentinels (possibly
// wrapped); the HTTP layer maps them onto status codes and the chat client
// decides between stopping, retrying and rolling back. Any other error from
// the store is treated as transient.
var (
	// ErrAuthExpired means the session token is invalid or expired. Fatal to
	// the current workflow; the caller must re-authenticate.
	ErrAuthExpired = errors.New("session expired")

	// ErrForbidden means the acting user failed a role check.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	ErrAlreadyMember      = errors.New("already a member of this group")
	ErrAlreadyRequested   = errors.New("already requested to join this group")
	ErrAlreadyCreator     = errors.New("already the creator of this group")
	ErrCreatorCannotLeave = errors.New("group creators cannot leave their own group")
	ErrNotAMember         = errors.New("not a member of this group")
)

// IsConflict reports whether err is one of the user-correctable conflict
// conditions.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyMember) ||
		errors.Is(err, ErrAlreadyRequested) ||
		errors.Is(err, ErrAlreadyCreator) ||
		errors.Is(err, ErrCreatorCannotLeave) ||
		errors.Is(err, ErrNotAMember)
}
