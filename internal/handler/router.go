package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/handler/api"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/handler/validation"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/i18n"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Content      *api.ContentHandler
	Availability *api.AvailabilityHandler
	Cart         *api.CartHandler
	Checkout     *api.CheckoutHandler
	Booking      *api.BookingHandler
	Webhook      *api.WebhookHandler
	Auth         *api.AuthHandler
}

type Middlewares struct {
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
	Metrics     middleware.RequestObserver
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	validation.Register()
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, cfg, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(mw.Logger))
	if mw.Metrics != nil {
		engine.Use(middleware.Metrics(mw.Metrics))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	if mw.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(mw.Gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	defaultLocale, ok := i18n.Parse(cfg.Booking.DefaultLocale)
	if !ok {
		defaultLocale = i18n.English
	}
	limited := []gin.HandlerFunc{mw.RateLimiter.Middleware()}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.Locale(defaultLocale))
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/content/:page", Handler: h.Content.GetPage},
		})

		// Guest routes carry the visitor session cookie
		guest := apiGroup.Group("")
		guest.Use(middleware.Session(cfg.Cookie, cfg.Session))
		addRoutes(guest, []route{
			{Method: http.MethodPost, Path: "/availability/search", Handler: h.Availability.Search},
			{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.Summary},
			{Method: http.MethodDelete, Path: "/cart", Handler: h.Cart.Clear},
			{Method: http.MethodPost, Path: "/cart/rooms", Handler: h.Cart.AddRoom},
			{Method: http.MethodDelete, Path: "/cart/rooms/:roomTypeId", Handler: h.Cart.RemoveRoom},
			{Method: http.MethodPatch, Path: "/cart/rooms/:roomTypeId", Handler: h.Cart.UpdateQuantity},
			{Method: http.MethodPut, Path: "/cart/guests", Handler: h.Cart.SetGuests},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Checkout, Mw: limited},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.GetForGuest},
			{Method: http.MethodPost, Path: "/bookings/:id/payment/check", Handler: h.Booking.CheckPayment, Mw: limited},
			{Method: http.MethodPost, Path: "/webhooks/stripe", Handler: h.Webhook.Stripe},
			{Method: http.MethodGet, Path: "/webhooks/qpay", Handler: h.Webhook.QPay},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		operator := []gin.HandlerFunc{mw.Auth.RequireRoleAtLeast(staff.RoleOperator)}
		admin := apiGroup.Group("/admin")
		admin.Use(mw.Auth.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm-payment", Handler: h.Booking.ConfirmPayment, Mw: operator},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel, Mw: operator},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
