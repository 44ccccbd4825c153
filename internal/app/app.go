package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mailersend/mailersend-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/parking/internal/config"
	"github.com/GlebRadaev/parking/internal/handlers"
	"github.com/GlebRadaev/parking/internal/notify"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/GlebRadaev/parking/internal/repo"
	"github.com/GlebRadaev/parking/internal/scheduler"
	"github.com/GlebRadaev/parking/internal/service"
	"github.com/GlebRadaev/parking/internal/service/reportservice"
	"github.com/GlebRadaev/parking/pkg/auth"
	"github.com/GlebRadaev/parking/pkg/logger"
)

const (
	jobCSVExport     = "csv_export"
	jobMonthlyReport = "monthly_report"
	jobDailyReminder = "daily_reminder"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	sched *scheduler.Scheduler

	closers []func() error
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("can't load schedule time zone: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, func() error { pool.Close(); return nil })
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, service.Options{
		JWTService: jwtService,
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
		Dispatcher: a.startMail(ctx, cfg),
		ExportDir:  cfg.ExportDir,
		Location:   loc,
	})
	a.api = handlers.New(a.srv, jwtService)

	if err := a.srv.AuthService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("can't create admin user: %w", err)
	}

	if err = a.startScheduler(ctx, loc); err != nil {
		return fmt.Errorf("can't start scheduler: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func newSender(cfg *config.Config) notify.Sender {
	if cfg.MailerSendKey == "" {
		zap.L().Warn("MAILERSEND_API_KEY is not set, emails will only be logged")
		return notify.LogSender{}
	}
	return notify.NewMailerSendSender(mailersend.NewMailersend(cfg.MailerSendKey), cfg.MailFromName, cfg.MailFrom)
}

// startMail queues mail through RabbitMQ when it is reachable and sends it
// in the caller's goroutine otherwise.
func (a *Application) startMail(ctx context.Context, cfg *config.Config) reportservice.Dispatcher {
	sender := newSender(cfg)
	if cfg.RabbitMQURL == "" {
		return notify.NewDirectDispatcher(sender)
	}

	broker, err := notify.Dial(cfg.RabbitMQURL, cfg.MailExchange, cfg.MailQueue)
	if err != nil {
		zap.L().Warn("RabbitMQ unavailable, sending mail directly", zap.Error(err))
		return notify.NewDirectDispatcher(sender)
	}
	a.closers = append(a.closers, broker.Close)

	consumer, err := broker.Consumer(sender, cfg.MailWorkers)
	if err != nil {
		zap.L().Warn("can't start mail consumer, sending mail directly", zap.Error(err))
		return notify.NewDirectDispatcher(sender)
	}
	a.closers = append(a.closers, consumer.Close)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := consumer.Run(ctx); err != nil {
			zap.L().Error("mail consumer exited", zap.Error(err))
		}
	}()
	return broker
}

func (a *Application) newLocker(ctx context.Context) scheduler.Locker {
	if a.cfg.RedisAddr == "" {
		return scheduler.NewLocalLocker()
	}
	client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("redis unavailable, job locks are process-local", zap.Error(err))
		_ = client.Close()
		return scheduler.NewLocalLocker()
	}
	a.closers = append(a.closers, client.Close)
	return scheduler.NewRedisLocker(client)
}

func (a *Application) startScheduler(ctx context.Context, loc *time.Location) error {
	a.sched = scheduler.New(loc, a.newLocker(ctx), a.cfg.JobTimeout)
	reports := a.srv.ReportService

	jobs := []scheduler.Job{
		{Name: jobCSVExport, Spec: a.cfg.CSVExportCron, Retries: a.cfg.JobRetries, Run: func(ctx context.Context) error {
			_, err := reports.ExportCSV(ctx)
			return err
		}},
		{Name: jobMonthlyReport, Spec: a.cfg.MonthlyReportCron, Retries: a.cfg.JobRetries, Run: reports.MonthlyReport},
		{Name: jobDailyReminder, Spec: a.cfg.DailyReminderCron, Retries: a.cfg.JobRetries, Run: reports.DailyReminder},
	}
	for _, job := range jobs {
		if err := a.sched.Register(job); err != nil {
			return err
		}
	}
	a.sched.Start()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), a.cfg.JobTimeout)
		defer cancel()
		if err := a.sched.Stop(sCtx); err != nil {
			zap.L().Warn("scheduler stopped with running jobs", zap.Error(err))
		}
	}()
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Warn("can't release resource", zap.Error(err))
		}
	}

	return appErr
}
