package middleware

import "net/http"

// CORSMiddleware opens the JSON API to browser clients served from origin.
type CORSMiddleware struct {
	origin string
}

func NewCORSMiddleware(origin string) *CORSMiddleware {
	if origin == "" {
		origin = "*"
	}
	return &CORSMiddleware{origin: origin}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if m.origin != "*" {
			w.Header().Add("Vary", "Origin")
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}
