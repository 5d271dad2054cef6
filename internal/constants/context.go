package constants

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// Context Keys for request tracking and metadata
const (
	CtxKeyRequestID ContextKey = "request_id"
	CtxKeyUserID    ContextKey = "user_id"
	CtxKeyUserEmail ContextKey = "user_email"
	CtxKeyUserRole  ContextKey = "user_role"
	CtxKeyClientIP  ContextKey = "client_ip"
	CtxKeyStartTime ContextKey = "start_time"
	CtxKeyModule    ContextKey = "module"
	CtxKeyFunction  ContextKey = "function"
)

// Gin context keys set by the access guard for downstream handlers
const (
	GinKeyCurrentUser = "current_user"
	GinKeyUserID      = "user_id"
	GinKeyUserEmail   = "user_email"
	GinKeyUserRole    = "user_role"
)
