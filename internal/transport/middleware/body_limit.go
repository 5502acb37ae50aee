package middleware

import "net/http"

// BodyLimit caps the size of request bodies. Reads past the limit fail and
// the handler reports an unparsable body. A non-positive limit returns nil,
// which Chain skips.
func BodyLimit(maxBytes int64) Middleware {
	if maxBytes <= 0 {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
