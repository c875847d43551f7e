package chi

import (
	"crypto/subtle"
	"net/http"
)

const authRealm = `Basic realm="surveyfront", charset="UTF-8"`

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// BasicAuthMiddleware protects the page with HTTP Basic auth. Any username is
// accepted; the password must be one of passwords. If passwords is empty,
// authentication is disabled (pass-through).
func BasicAuthMiddleware(passwords []string) func(http.Handler) http.Handler {
	valid := make([][]byte, 0, len(passwords))
	for _, p := range passwords {
		if p != "" {
			valid = append(valid, []byte(p))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(valid) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			_, pass, ok := r.BasicAuth()
			if !ok || !matchAny(valid, []byte(pass)) {
				w.Header().Set("WWW-Authenticate", authRealm)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func matchAny(valid [][]byte, got []byte) bool {
	match := 0
	for _, v := range valid {
		match |= subtle.ConstantTimeCompare(v, got)
	}
	return match == 1
}
