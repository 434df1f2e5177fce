package httpx

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"fyyur/internal/platform/logging"
)

// RecoveryMiddleware turns a panic into a logged error and, when nothing has
// been written yet, hands the request to onPanic to render an error page.
func RecoveryMiddleware(onPanic func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logging.FromContext(r.Context()).
						WithField("stack", string(debug.Stack())).
						Errorf("panic recovered: %v", rec)

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}

					if !wroteHeader {
						onPanic(w, r, fmt.Errorf("panic: %v", rec))
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
