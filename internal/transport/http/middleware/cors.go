package middleware

import "net/http"

// CORS applies the service's cross-origin policy. An allowed origin of "*"
// echoes any caller; otherwise only listed origins are accepted.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			wildcard = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				_, ok := allowed[origin]
				if wildcard || ok {
					headers := w.Header()
					headers.Set("Access-Control-Allow-Origin", origin)
					headers.Set("Access-Control-Allow-Credentials", "true")
					headers.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					headers.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
					headers.Add("Vary", "Origin")
				}
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
