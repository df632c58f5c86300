package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gatherly/rsvp-backend-go/internal/config"
	appHTTP "github.com/gatherly/rsvp-backend-go/internal/handler/http"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/cron"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/database"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/email"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/jwt"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/window"
	"github.com/gatherly/rsvp-backend-go/internal/repository/postgresql"
	funnelService "github.com/gatherly/rsvp-backend-go/internal/service/funnel"
	inviteService "github.com/gatherly/rsvp-backend-go/internal/service/invite"
	metricsService "github.com/gatherly/rsvp-backend-go/internal/service/metrics"
	rsvpService "github.com/gatherly/rsvp-backend-go/internal/service/rsvp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn, "migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	inviteRepo := postgresql.NewInviteRepository(db)
	rsvpRepo := postgresql.NewRSVPRepository(db)
	membershipRepo := postgresql.NewMembershipRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	metricsRepo := postgresql.NewMetricsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	windowParser := window.NewParser(cfg.Window)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	inviteSvc := inviteService.NewInviteService(inviteRepo, rsvpRepo, eventRepo, windowParser)
	rsvpSvc := rsvpService.NewRSVPService(rsvpRepo, inviteRepo, membershipRepo, emailService)
	eventSvc := funnelService.NewEventService(eventRepo)
	metricsSvc := metricsService.NewMetricsService(metricsRepo, eventRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService)
	inviteHandler := appHTTP.NewInviteHandler(inviteSvc)
	rsvpHandler := appHTTP.NewRSVPHandler(rsvpSvc)
	eventHandler := appHTTP.NewEventHandler(eventSvc)
	metricsHandler := appHTTP.NewMetricsHandler(metricsSvc, cfg.Metrics)

	scheduler := cron.NewScheduler()
	err = scheduler.AddJob("daily-metrics-snapshot", "5 0 * * *", func(ctx context.Context) error {
		hero, err := metricsSvc.ComputeHero(ctx, cfg.Metrics.HeroWindowDays)
		if err != nil {
			return err
		}
		slog.Info("Daily engagement snapshot",
			"window_days", hero.WindowDays,
			"invites_created", hero.InvitesCreated,
			"new_creators", hero.NewCreators,
		)
		return nil
	})
	if err != nil {
		log.Fatal("Failed to register cron job:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		inviteHandler,
		rsvpHandler,
		eventHandler,
		metricsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
