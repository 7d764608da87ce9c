package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/clockport/clockport-backend-go/internal/handler/http/middleware"
	"github.com/clockport/clockport-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Organization OrganizationHandler
	Role         RoleHandler
	Punch        PunchHandler
	Adjustment   AdjustmentHandler
	Leave        LeaveHandler
	Announcement AnnouncementHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, subscriptionMW *middleware.SubscriptionMiddleware, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "clockport"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))
	r.Use(middleware.Locale)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register-org", h.Auth.RegisterOrg)
			r.Post("/join", h.Auth.JoinOrg)
			r.Post("/verify-email", h.Auth.VerifyEmail)
			r.Post("/resend-verification", h.Auth.ResendVerification)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)
		})

		// Authenticated routes. Reads stay available when the subscription
		// lapses; writes are gated on a usable subscription.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/users/me", h.User.GetMe)
			r.Delete("/users/me", h.User.DeleteMe)

			r.Get("/org/roles", h.Role.List)

			r.Get("/notifications", h.Notification.List)
			r.Get("/notifications/stream", h.Notification.Stream)
			r.Get("/notifications/unread-count", h.Notification.UnreadCount)
			r.Post("/notifications/{id}/read", h.Notification.MarkRead)
			r.Post("/notifications/read-all", h.Notification.MarkAllRead)

			r.Get("/announcements", h.Announcement.List)

			r.Get("/punches/status", h.Punch.Status)
			r.Get("/punches/day", h.Punch.ListDay)
			r.With(subscriptionMW.RequireUsableSubscription).Post("/punches", h.Punch.Record)

			r.Get("/adjustments/mine", h.Adjustment.ListMine)
			r.With(subscriptionMW.RequireUsableSubscription).Post("/adjustments", h.Adjustment.Create)

			r.Get("/leaves/mine", h.Leave.ListMine)
			r.With(subscriptionMW.RequireUsableSubscription).Post("/leaves", h.Leave.Create)
			r.With(subscriptionMW.RequireUsableSubscription).Post("/leaves/{id}/cancel", h.Leave.Cancel)

			r.Get("/reports/me", h.Report.MyMonthly)

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/org", h.Organization.Get)
				r.Put("/org", h.Organization.Update)
				r.Post("/org/regenerate-code", h.Organization.RegenerateCode)
				r.Get("/org/subscription", h.Organization.GetSubscription)
				r.Post("/org/subscription/activate", h.Organization.ActivateSubscription)
				r.Post("/org/subscription/cancel", h.Organization.CancelSubscription)

				r.With(subscriptionMW.RequireUsableSubscription).Post("/org/roles", h.Role.Create)
				r.With(subscriptionMW.RequireUsableSubscription).Put("/org/roles/{id}", h.Role.Update)
				r.Delete("/org/roles/{id}", h.Role.Delete)

				r.Get("/users", h.User.List)
				r.Get("/users/pending", h.User.ListPending)
				r.With(subscriptionMW.RequireUsableSubscription).Post("/users/{id}/approve", h.User.Approve)
				r.With(subscriptionMW.RequireUsableSubscription).Put("/users/{id}/status", h.User.UpdateStatus)
				r.With(subscriptionMW.RequireUsableSubscription).Put("/users/{id}/contract", h.User.UpdateContract)
				r.Delete("/users/{id}", h.User.Delete)

				r.Get("/adjustments", h.Adjustment.ListOrg)
				r.With(subscriptionMW.RequireUsableSubscription).Post("/adjustments/{id}/approve", h.Adjustment.Approve)
				r.With(subscriptionMW.RequireUsableSubscription).Post("/adjustments/{id}/reject", h.Adjustment.Reject)

				r.Get("/leaves", h.Leave.ListOrg)
				r.With(subscriptionMW.RequireUsableSubscription).Post("/leaves/{id}/approve", h.Leave.Approve)
				r.With(subscriptionMW.RequireUsableSubscription).Post("/leaves/{id}/reject", h.Leave.Reject)

				r.With(subscriptionMW.RequireUsableSubscription).Post("/announcements", h.Announcement.Create)
				r.With(subscriptionMW.RequireUsableSubscription).Put("/announcements/{id}", h.Announcement.Update)
				r.Delete("/announcements/{id}", h.Announcement.Delete)

				r.Get("/reports/org", h.Report.OrgMonthly)
				r.Get("/reports/employees/{id}", h.Report.EmployeeMonthly)
				r.Get("/reports/export/csv", h.Report.ExportCSV)
				// The Word export is a paid-tier feature; trials get CSV only.
				r.With(subscriptionMW.RequireActiveSubscription).Get("/reports/export/doc", h.Report.ExportDoc)
				r.Get("/reports/dashboard", h.Report.Dashboard)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
