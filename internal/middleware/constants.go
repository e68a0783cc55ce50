package middleware

// Roles carried in the token's role claim
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Authorization header parsing
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// EmptyUserID represents an empty or missing user ID
const EmptyUserID = ""

// Client-facing error messages
const (
	ErrMsgMissingAuthHeader = "Missing authorization header"
	ErrMsgInvalidAuthHeader = "Invalid authorization header format"
	ErrMsgInvalidToken      = "Invalid or expired token"
	ErrMsgAdminRequired     = "Admin privileges required"
)

// Log Messages
const (
	LogMsgTokenRejected = "Rejected bearer token"
	LogMsgAdminDenied   = "Admin route denied"
)
