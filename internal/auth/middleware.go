package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Sohail342/task-management/internal"
)

// RequireRoles gates an already-authenticated request on a role
// allow-list. The list is a plain value parameter so every endpoint
// reuses the same middleware with its own set of roles.
func RequireRoles(logger *slog.Logger, roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				logger.Warn("role check failed: user not found in context")
				writeAppError(w, internal.ErrMissingCredentials)
				return
			}

			if !user.HasRole(roles...) {
				logger.WarnContext(r.Context(), "access denied: role not permitted",
					"user_id", user.ID,
					"role", user.Role,
					"allowed_roles", roles)
				writeAppError(w, internal.ErrNotPermitted)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAppError(w http.ResponseWriter, appErr *internal.AppError) {
	status, body := appErr.ToHTTPResponse()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
