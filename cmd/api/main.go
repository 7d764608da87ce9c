package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/clockport/clockport-backend-go/internal/config"
	appHTTP "github.com/clockport/clockport-backend-go/internal/handler/http"
	"github.com/clockport/clockport-backend-go/internal/handler/http/middleware"
	"github.com/clockport/clockport-backend-go/internal/pkg/cron"
	"github.com/clockport/clockport-backend-go/internal/pkg/database"
	"github.com/clockport/clockport-backend-go/internal/pkg/email"
	"github.com/clockport/clockport-backend-go/internal/pkg/i18n"
	"github.com/clockport/clockport-backend-go/internal/pkg/jwt"
	"github.com/clockport/clockport-backend-go/internal/pkg/sse"
	"github.com/clockport/clockport-backend-go/internal/repository/postgresql"
	"github.com/clockport/clockport-backend-go/internal/service/adjustment"
	announcementService "github.com/clockport/clockport-backend-go/internal/service/announcement"
	serviceAuth "github.com/clockport/clockport-backend-go/internal/service/auth"
	leaveService "github.com/clockport/clockport-backend-go/internal/service/leave"
	notificationService "github.com/clockport/clockport-backend-go/internal/service/notification"
	organizationService "github.com/clockport/clockport-backend-go/internal/service/organization"
	punchService "github.com/clockport/clockport-backend-go/internal/service/punch"
	reportService "github.com/clockport/clockport-backend-go/internal/service/report"
	roleService "github.com/clockport/clockport-backend-go/internal/service/role"
	userService "github.com/clockport/clockport-backend-go/internal/service/user"
	"github.com/clockport/clockport-backend-go/internal/timeledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logger.Error("invalid APP_TIMEZONE", "timezone", cfg.App.Timezone, "error", err)
		return
	}

	i18n.Init(cfg.App.DefaultLocale)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("database connection failed", "error", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	orgRepo := postgresql.NewOrganizationRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	ledger := timeledger.New(loc)
	hub := sse.NewHub()

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		logger.Error("email service init failed", "error", err)
		return
	}

	notificationSvc := notificationService.NewNotificationService(db, notificationRepo, userRepo, hub, logger)
	authSvc := serviceAuth.NewAuthService(db, userRepo, orgRepo, jwtService, notificationSvc, emailSvc, cfg.App.TrialDays)
	userSvc := userService.NewUserService(db, userRepo, notificationSvc)
	orgSvc := organizationService.NewOrganizationService(db, orgRepo)
	punchSvc := punchService.NewPunchService(db, punchRepo, userRepo, ledger, loc)
	adjustmentSvc := adjustment.NewAdjustmentService(db, adjustmentRepo, punchRepo, userRepo, notificationSvc, loc)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, userRepo, notificationSvc)
	announcementSvc := announcementService.NewAnnouncementService(db, announcementRepo, userRepo, notificationSvc)
	reportSvc := reportService.NewReportService(db, punchRepo, adjustmentRepo, leaveRepo, userRepo, ledger, loc, logger)
	roleSvc := roleService.NewRoleService(db, roleRepo)

	subscriptionMW := middleware.NewSubscriptionMiddleware(orgRepo)

	scheduler := cron.NewScheduler()
	cron.NewSubscriptionJobs(orgRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		subscriptionMW,
		appHTTP.Handlers{
			Auth:         appHTTP.NewAuthHandler(jwtService, authSvc),
			User:         appHTTP.NewUserHandler(userSvc),
			Organization: appHTTP.NewOrganizationHandler(orgSvc),
			Role:         appHTTP.NewRoleHandler(roleSvc),
			Punch:        appHTTP.NewPunchHandler(punchSvc),
			Adjustment:   appHTTP.NewAdjustmentHandler(adjustmentSvc),
			Leave:        appHTTP.NewLeaveHandler(leaveSvc),
			Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
			Notification: appHTTP.NewNotificationHandler(notificationSvc, hub),
			Report:       appHTTP.NewReportHandler(reportSvc),
		},
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.App.Env, "timezone", cfg.App.Timezone)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server error", "error", err)
	}
}
