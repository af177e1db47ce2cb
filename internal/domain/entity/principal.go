package entity

import "github.com/google/uuid"

// Principal is the identity established for the current request after a token
// has been validated or credentials verified. It is request-scoped: resolved
// once at the delivery boundary, passed down explicitly, never persisted and
// never shared across requests. A nil *Principal means the request is anonymous.
type Principal struct {
	UserID uuid.UUID
	Email  string
}
