package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RecoverJSON recovers from panics in downstream handlers, logs the stack
// and replies 500 with a JSON error body. The server keeps serving.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Printf("[%s] panic serving %s %s: %v\n%s", chimw.GetReqID(r.Context()), r.Method, r.URL.Path, rec, debug.Stack())

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Internal server error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
