package serverfx

import (
	"encoding/json"
	"net/http"

	"github.com/hubgate/hubgate/pkg/middleware/identity"
)

// whoamiHandler answers with the resolved identity. It sits behind
// RequireUser, so by the time it runs the memo already holds a match.
func whoamiHandler(id *identity.Middleware) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := id.CurrentUser(r)
		if err != nil || user == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"name": user})
	})
}
