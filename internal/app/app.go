package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Roy125512/SacrePadel/internal/cache"
	"github.com/Roy125512/SacrePadel/internal/config"
	"github.com/Roy125512/SacrePadel/internal/events"
	"github.com/Roy125512/SacrePadel/internal/handler"
	"github.com/Roy125512/SacrePadel/internal/middleware"
	"github.com/Roy125512/SacrePadel/internal/notification"
	"github.com/Roy125512/SacrePadel/internal/pricing"
	"github.com/Roy125512/SacrePadel/internal/repository"
	"github.com/Roy125512/SacrePadel/internal/router"
	"github.com/Roy125512/SacrePadel/internal/schedule"
	"github.com/Roy125512/SacrePadel/internal/service"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
	"github.com/Roy125512/SacrePadel/migrations"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/redis"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	closers    []namedCloser
}

type namedCloser struct {
	name string
	c    io.Closer
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"SacrePadel",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) policy() (service.Policy, error) {
	f := a.cfg.Facility

	zone, err := schedule.ParseOffset(f.UTCOffset)
	if err != nil {
		return service.Policy{}, err
	}

	return service.Policy{
		Facility: schedule.Facility{
			Zone:        zone,
			OpenHour:    f.OpenHour,
			CloseHour:   f.CloseHour,
			Step:        f.SlotStep,
			MinDuration: f.MinDuration,
		},
		Tariff: pricing.Tariff{
			DayRate:     f.DayRate,
			EveningRate: f.EveningRate,
			SwitchHour:  f.SwitchHour,
			Zone:        zone,
		},
		HoldTTL:          f.HoldTTL,
		PhoneRegion:      f.PhoneRegion,
		ToleranceMinutes: f.ToleranceMinutes,
		ClubName:         f.Name,
		ContactPhone:     f.ContactPhone,
	}, nil
}

func (a *App) initServices() error {
	policy, err := a.policy()
	if err != nil {
		return fmt.Errorf("facility: %w", err)
	}

	bookingRepo := repository.NewBookingRepo(a.db)
	customerRepo := repository.NewCustomerRepo(a.db)
	profileRepo := repository.NewProfileRepo(a.db)
	courtRepo := a.courtRepo(repository.NewCourtRepo(a.db))

	mailer, err := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     a.cfg.Mail.Host,
		Port:     a.cfg.Mail.Port,
		Username: a.cfg.Mail.Username,
		Password: a.cfg.Mail.Password,
		From:     a.cfg.Mail.From,
		FromName: a.cfg.Mail.FromName,
		TLS:      a.cfg.Mail.TLS,
		SSL:      a.cfg.Mail.SSL,
		Timeout:  a.cfg.Mail.Timeout,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	staff, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ReceptionChatID,
		policy.Facility.Zone,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	sink, err := a.eventSink()
	if err != nil {
		return fmt.Errorf("init event sink: %w", err)
	}

	availabilityService := service.NewAvailabilityService(courtRepo, bookingRepo, policy)
	holdService := service.NewHoldService(bookingRepo, courtRepo, sink, policy, a.log)
	confirmationService := service.NewConfirmationService(
		bookingRepo, courtRepo, customerRepo, profileRepo,
		mailer, staff, sink, policy, a.log,
	)
	lifecycleService := service.NewLifecycleService(bookingRepo, customerRepo, staff, sink, policy, a.log)
	customerService := service.NewCustomerService(customerRepo)

	h := handler.NewHandler(
		availabilityService,
		holdService,
		confirmationService,
		lifecycleService,
		customerService,
		policy.Facility.Zone,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// courtRepo оборачивает репозиторий кэшем, если redis настроен и отвечает.
func (a *App) courtRepo(repo ports.CourtRepo) ports.CourtRepo {
	if a.cfg.Redis.Addr == "" {
		return repo
	}

	client := redis.New(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		a.log.Warn("redis unavailable, court cache disabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		_ = client.Close()
		return repo
	}

	a.closers = append(a.closers, namedCloser{name: "redis", c: client})
	a.log.Info("court cache enabled", logger.Duration("ttl", a.cfg.Redis.CourtTTL))

	return cache.NewCourtCache(repo, client, a.cfg.Redis.CourtTTL, a.log)
}

func (a *App) eventSink() (ports.BookingEventSink, error) {
	sinks := []ports.BookingEventSink{repository.NewEventLogRepo(a.db)}

	if a.cfg.RabbitMQ.URL != "" {
		publisher, err := events.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, namedCloser{name: "rabbitmq", c: publisher})
		sinks = append(sinks, publisher)
		a.log.Info("booking events are published",
			logger.String("exchange", a.cfg.RabbitMQ.Exchange),
		)
	}

	return events.NewFanout(sinks...), nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.ShutdownTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	for _, nc := range a.closers {
		if err := nc.c.Close(); err != nil {
			a.log.Warn("close failed", logger.String("component", nc.name), logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		return err
	}

	a.log.Info("migrations applied successfully")
	return nil
}
