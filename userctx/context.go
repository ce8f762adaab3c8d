package userctx

import "context"

// Context key type
type contextKey string

const adminKey contextKey = "admin_username"

// SetAdmin adds the signed-in administrator's name to the request context
func SetAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey, username)
}

// GetAdmin retrieves the administrator's name from the request context
func GetAdmin(ctx context.Context) string {
	username, ok := ctx.Value(adminKey).(string)
	if !ok {
		return ""
	}
	return username
}
