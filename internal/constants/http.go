package constants

// HTTP Header Names
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-IP"
)

// HTTP Content Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeText = "text/plain"
)

// Common HTTP Error Messages
const (
	MsgUnauthorized     = "Unauthorized access"
	MsgForbidden        = "Access forbidden"
	MsgNotFound         = "Resource not found"
	MsgBadRequest       = "Invalid request"
	MsgValidationFailed = "Validation failed"
	MsgInternalError    = "Internal server error"
	MsgConflict         = "Resource already exists"
)

// HTTP Success Messages
const (
	MsgCreated = "Resource created successfully"
	MsgUpdated = "Resource updated successfully"
	MsgDeleted = "Resource deleted successfully"
	MsgSuccess = "Operation completed successfully"
)
