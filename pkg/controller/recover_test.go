package controller_test

import (
	"customers/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithRecover(t *testing.T) {
	t.Run("panic becomes a generic 500", func(t *testing.T) {
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("customer 7 cannot be promoted")
		})

		rec := httptest.NewRecorder()
		controller.WithRecover(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, controller.InternalErrorBody, rec.Body.String())
		require.NotContains(t, rec.Body.String(), "customer 7")
	})

	t.Run("no panic passes through", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})

		rec := httptest.NewRecorder()
		controller.WithRecover(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		})

		require.PanicsWithValue(t, http.ErrAbortHandler, func() {
			controller.WithRecover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
