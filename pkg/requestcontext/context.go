// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; services read them without importing net/http.
//
//	citizenID := requestcontext.CitizenID(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject values directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithPrincipal(ctx, "29801011234567", RoleInspector)
package requestcontext

import (
	"context"
	"slices"
	"time"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
)

// Role is an authorization group carried by the access token.
type Role string

const (
	RoleCitizen   Role = "citizen"
	RoleInspector Role = "inspector"
)

type (
	principalKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

var (
	ContextKeyPrincipal   = principalKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// Principal is the authenticated caller.
type Principal struct {
	Subject id.NationalID
	Roles   []Role
}

// HasRole reports whether the principal carries role.
func (p Principal) HasRole(role Role) bool {
	return slices.Contains(p.Roles, role)
}

// -----------------------------------------------------------------------------
// Auth context
// -----------------------------------------------------------------------------

// WithPrincipal injects the authenticated caller into the context.
func WithPrincipal(ctx context.Context, subject id.NationalID, roles ...Role) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, Principal{Subject: subject, Roles: roles})
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ContextKeyPrincipal).(Principal)
	return p, ok
}

// CitizenID returns the authenticated subject, or the zero NationalID.
func CitizenID(ctx context.Context) id.NationalID {
	if p, ok := PrincipalFrom(ctx); ok {
		return p.Subject
	}
	return ""
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// -----------------------------------------------------------------------------
// Request time
// -----------------------------------------------------------------------------

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
