package middleware

import (
	"net/http"
	"strings"
)

// UserHeader is the trusted header carrying the caller's user id. The
// authentication flow lives outside this service; by the time a request
// reaches it, the id is already established.
const UserHeader = "X-Savr-User"

// DefaultUser is used when no user header is present, so a single-user
// deployment works with zero client configuration.
const DefaultUser = "default"

// UserID returns the user id for the request.
func UserID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(UserHeader)); id != "" {
		return id
	}
	return DefaultUser
}
