//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/cookie"
	"resort-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	id   uuid.UUID
	role staff.Role
	err  error
}

func (f fakeValidator) ValidateToken(string) (uuid.UUID, staff.Role, error) {
	return f.id, f.role, f.err
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New()

	newRouter := func(v fakeValidator, minRole staff.Role) *gin.Engine {
		m := middleware.NewAuthMiddleware(v)
		r := gin.New()
		r.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(minRole), func(c *gin.Context) {
			id, _ := middleware.GetStaffID(c)
			c.String(http.StatusOK, id.String())
		})
		return r
	}

	cases := []struct {
		name       string
		validator  fakeValidator
		minRole    staff.Role
		setup      func(req *http.Request)
		expectCode int
	}{
		{
			name:       "bearer header",
			validator:  fakeValidator{id: staffID, role: staff.RoleOperator},
			minRole:    staff.RoleOperator,
			setup:      func(req *http.Request) { req.Header.Set("Authorization", "Bearer tok") },
			expectCode: http.StatusOK,
		},
		{
			name:       "cookie",
			validator:  fakeValidator{id: staffID, role: staff.RoleAdmin},
			minRole:    staff.RoleOperator,
			setup:      func(req *http.Request) { req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "tok"}) },
			expectCode: http.StatusOK,
		},
		{
			name:       "no token",
			validator:  fakeValidator{id: staffID, role: staff.RoleAdmin},
			minRole:    staff.RoleViewer,
			setup:      func(*http.Request) {},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			validator:  fakeValidator{err: errors.New("token is expired")},
			minRole:    staff.RoleViewer,
			setup:      func(req *http.Request) { req.Header.Set("Authorization", "Bearer tok") },
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "role below minimum",
			validator:  fakeValidator{id: staffID, role: staff.RoleViewer},
			minRole:    staff.RoleOperator,
			setup:      func(req *http.Request) { req.Header.Set("Authorization", "Bearer tok") },
			expectCode: http.StatusForbidden,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			tc.setup(req)

			rec := serve(newRouter(tc.validator, tc.minRole), req)

			assert.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
			if tc.expectCode == http.StatusOK {
				assert.Equal(t, staffID.String(), rec.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 2})
	r := gin.New()
	r.POST("/checkout", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	from := func(ip string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.RemoteAddr = ip + ":5555"
		return req
	}

	assert.Equal(t, http.StatusNoContent, serve(r, from("10.0.0.1")).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, from("10.0.0.1")).Code)
	blocked := serve(r, from("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))

	// buckets are per client
	assert.Equal(t, http.StatusNoContent, serve(r, from("10.0.0.2")).Code)
}

func TestSessionAndLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Locale("mn"), middleware.Session(config.CookieConfig{SameSite: "Lax"}, config.SessionConfig{TTL: time.Hour}))
	r.GET("/", func(c *gin.Context) {
		id, ok := middleware.GetSessionID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String()+"|"+middleware.GetLocale(c).String())
	})

	t.Run("new visitor gets a session and the fallback locale", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		var sessionCookie *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == cookie.SessionCookieName {
				sessionCookie = c
			}
		}
		require.NotNil(t, sessionCookie)
		assert.Equal(t, 3600, sessionCookie.MaxAge)
		assert.True(t, sessionCookie.HttpOnly)
		assert.Equal(t, sessionCookie.Value+"|mn", rec.Body.String())
	})

	t.Run("explicit lang beats the header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
		req.Header.Set("Accept-Language", "mn")
		rec := serve(r, req)
		assert.Contains(t, rec.Body.String(), "|en")
	})
}

type recordingObserver struct {
	route  string
	status int
}

func (o *recordingObserver) Observe(_, route string, status int, _ time.Duration) {
	o.route, o.status = route, status
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &recordingObserver{}
	r := gin.New()
	r.Use(middleware.Metrics(obs))
	r.GET("/api/bookings/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	serve(r, httptest.NewRequest(http.MethodGet, "/api/bookings/123", nil))

	assert.Equal(t, "/api/bookings/:id", obs.route)
	assert.Equal(t, http.StatusAccepted, obs.status)
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/domain", func(c *gin.Context) {
		_ = c.Error(errs.WithDetail(errs.Mark(errors.New("short"), errs.ErrInsufficientCapacity), "1 more needed"))
	})
	r.GET("/unknown", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection reset"))
	})
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/empty", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	cases := []struct {
		path       string
		expectCode int
		contains   string
		absent     string
	}{
		{path: "/domain", expectCode: http.StatusUnprocessableEntity, contains: "1 more needed"},
		{path: "/unknown", expectCode: http.StatusInternalServerError, contains: "Internal server error", absent: "connection reset"},
		{path: "/panic", expectCode: http.StatusInternalServerError, contains: "Internal server error", absent: "boom"},
		{path: "/empty", expectCode: http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := serve(r, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.expectCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.contains)
			if tc.absent != "" {
				assert.NotContains(t, rec.Body.String(), tc.absent)
			}
		})
	}
}

func TestCORSAlwaysExposesBookingHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"https://lakeside.mn"},
		AllowMethods:  []string{"GET"},
		ExposeHeaders: []string{"Content-Length"},
	}))
	r.GET("/api/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Origin", "https://lakeside.mn")
	rec := serve(r, req)

	exposed := rec.Header().Get("Access-Control-Expose-Headers")
	for _, h := range []string{"Content-Length", "Location", "Idempotent-Replayed", "Retry-After"} {
		assert.Contains(t, exposed, h)
	}
}

func TestRequestLoggerRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(nil))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	t.Run("inbound uuid is kept", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, id)

		rec := serve(r, req)

		assert.Equal(t, id, rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("anything else is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")

		rec := serve(r, req)

		_, err := uuid.Parse(rec.Header().Get(middleware.RequestIDHeader))
		require.NoError(t, err)
	})
}
