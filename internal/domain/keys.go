package domain

// CtxKey identifies request-scoped values set by the auth middleware.
// Auth state is always carried per request, never in package-level state.
type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)
