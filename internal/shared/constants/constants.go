package constants

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// gin context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)
