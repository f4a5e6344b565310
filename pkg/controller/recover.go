package controller

import (
	"customers/pkg/logger"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// InternalErrorBody is written when a handler panics. Details are only logged.
const InternalErrorBody = `{"code":"INTERNAL","message":"internal error"}`

// WithRecover returns a middleware that turns a panic in next into a 500
// response. http.ErrAbortHandler is re-raised so net/http can abort the
// connection as intended.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(r.Context(), "recovered panic in http handler",
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(InternalErrorBody))
		}()

		next.ServeHTTP(w, r)
	})
}
