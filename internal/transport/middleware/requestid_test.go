package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hr-assistant/internal/transport/middleware"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("RequestID", func() {
	var handler http.Handler

	BeforeEach(func() {
		handler = middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	})

	It("mints a trace id when the request has none", func() {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)

		handler.ServeHTTP(recorder, request)

		Expect(recorder.Header().Get("X-Trace-ID")).NotTo(BeEmpty())
	})

	It("echoes the caller's trace id", func() {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		request.Header.Set("X-Trace-ID", "trace-42")

		handler.ServeHTTP(recorder, request)

		Expect(recorder.Header().Get("X-Trace-ID")).To(Equal("trace-42"))
	})

	It("gives each request its own trace id", func() {
		first := httptest.NewRecorder()
		second := httptest.NewRecorder()

		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

		Expect(first.Header().Get("X-Trace-ID")).NotTo(Equal(second.Header().Get("X-Trace-ID")))
	})
})
