package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/api/handler"
	"github.com/storepulse/insight-api/internal/api/middleware"
	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/service"
)

// AccountLoader is the gate's view of the account store.
type AccountLoader interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
}

// Deps carries everything the router wires together. Handlers are built by
// the caller (main) so the router stays a pure wiring function.
type Deps struct {
	Tokens   *service.TokenService
	Accounts AccountLoader
	Log      zerolog.Logger

	User     *handler.UserHandler
	Mail     *handler.MailHandler
	OAuth    *handler.OAuthHandler
	Notice   *handler.NoticeHandler
	Store    *handler.StoreHandler
	Analysis *handler.AnalysisHandler
	Chat     *handler.ChatHandler
	Location *handler.LocationHandler
	Health   *handler.HealthHandler
	Ready    *handler.ReadinessHandler
}

// NewRouter builds the Echo instance with all routes registered. The gate
// runs globally; per-route middleware adds only the admin check on notice
// writes. The route set here must stay in sync with the public-route table
// in internal/api/middleware.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("insight"))
	e.Use(middleware.Gate(d.Tokens, d.Accounts, d.Log))

	// --- Local accounts ---
	e.POST("/api/user", d.User.SignUp)
	e.POST("/api/user/login", d.User.Login)
	e.GET("/api/user", d.User.Me)
	e.DELETE("/api/user", d.User.Delete)
	e.PATCH("/api/user/name", d.User.UpdateName)
	e.PATCH("/api/user/password", d.User.UpdatePassword)
	e.POST("/api/user/name/check", d.User.CheckName)
	e.POST("/api/user/email/check", d.User.CheckEmail)

	// --- Mail verification / password reset ---
	e.POST("/api/mail/send", d.Mail.Send)
	e.POST("/api/mail/verify", d.Mail.Verify)
	e.POST("/api/mail/password", d.Mail.PasswordReset)

	// --- Federated login ---
	e.GET("/api/oauth/kakao/callback", d.OAuth.KakaoCallback)

	// --- Notices: reads public, writes admin-only ---
	admin := middleware.RequireAdmin()
	e.GET("/api/notice/page_count", d.Notice.PageCount)
	e.GET("/api/notice/page/:page", d.Notice.Page)
	e.GET("/api/notice/:id", d.Notice.Get)
	e.POST("/api/notice", d.Notice.Create, admin)
	e.PUT("/api/notice/:id", d.Notice.Update, admin)
	e.DELETE("/api/notice/:id", d.Notice.Delete, admin)

	// --- Analytics proxy ---
	e.POST("/api/proxy/store/register", d.Store.Register)
	e.GET("/api/proxy/store/list", d.Store.List)
	e.GET("/api/proxy/store/:id", d.Store.Detail)
	e.PATCH("/api/proxy/store/:id/main", d.Store.SetMain)
	e.DELETE("/api/proxy/store/:id", d.Store.Delete)

	e.POST("/api/proxy/analysis/combined", d.Analysis.Run)
	e.GET("/api/proxy/analysis/:id", d.Analysis.Result)

	e.POST("/api/proxy/chat", d.Chat.Send)

	e.POST("/api/proxy/location/recommend", d.Location.Recommend)

	// --- Operational endpoints ---
	e.GET("/health", d.Health.Liveness)
	e.GET("/health/ready", d.Ready.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
