package auth

import "context"

// Authentication methods
const (
	MethodAPIKey = "api_key"
	MethodToken  = "token"
)

// PublicActor names changes made through unauthenticated public forms
const PublicActor = "public"

// AdminContext identifies the authenticated administrator of a request
type AdminContext struct {
	Subject string
	Method  string
}

type contextKey string

const adminContextKey contextKey = "adminContext"

// WithAdminContext adds admin identity to the context
func WithAdminContext(ctx context.Context, admin *AdminContext) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

// FromContext extracts admin identity from the context
func FromContext(ctx context.Context) (*AdminContext, bool) {
	admin, ok := ctx.Value(adminContextKey).(*AdminContext)
	return admin, ok
}

// Actor returns the subject to record in audit trails
func Actor(ctx context.Context) string {
	if admin, ok := FromContext(ctx); ok && admin.Subject != "" {
		return admin.Subject
	}
	return PublicActor
}
