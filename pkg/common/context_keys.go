package common

type ContextKey string

// AdminUserContextKey holds the authenticated principal in fiber locals.
const AdminUserContextKey ContextKey = "admin_user"
