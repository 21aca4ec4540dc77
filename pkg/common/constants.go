package common

// AdminTokenCookie is the cookie carrying the signed session credential.
const AdminTokenCookie = "admin_token"

// Endpoint classes used as rate limit key prefixes.
const (
	LimitClassLogin   = "admin-login"
	LimitClassChat    = "chat"
	LimitClassContact = "contact"
	LimitClassAdmin   = "admin"
)
