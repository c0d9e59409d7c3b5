package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRateLimitWrites(t *testing.T) {
	Convey("Given a limiter with a burst of two", t, func() {
		h := RateLimitWrites(0.001, 2)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		do := func(method, addr string) int {
			req := httptest.NewRequest(method, "/api/athletes", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			return rec.Code
		}

		Convey("The third write from one IP is refused", func() {
			So(do(http.MethodPost, "10.0.0.1:1000"), ShouldEqual, http.StatusNoContent)
			So(do(http.MethodPut, "10.0.0.1:1001"), ShouldEqual, http.StatusNoContent)
			So(do(http.MethodDelete, "10.0.0.1:1002"), ShouldEqual, http.StatusTooManyRequests)

			Convey("Other clients keep their own budget", func() {
				So(do(http.MethodPost, "10.0.0.2:1000"), ShouldEqual, http.StatusNoContent)
			})
		})

		Convey("Reads are not limited", func() {
			for i := 0; i < 5; i++ {
				So(do(http.MethodGet, "10.0.0.1:1000"), ShouldEqual, http.StatusNoContent)
			}
		})
	})
}
