package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/shopspring/decimal"
	"github.com/timerod/timerod-backend-go/internal/config"
	appHTTP "github.com/timerod/timerod-backend-go/internal/handler/http"
	"github.com/timerod/timerod-backend-go/internal/handler/http/response"
	"github.com/timerod/timerod-backend-go/internal/pkg/cron"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
	"github.com/timerod/timerod-backend-go/internal/pkg/jwt"
	"github.com/timerod/timerod-backend-go/internal/repository/postgresql"
	areaService "github.com/timerod/timerod-backend-go/internal/service/area"
	attendanceService "github.com/timerod/timerod-backend-go/internal/service/attendance"
	serviceAuth "github.com/timerod/timerod-backend-go/internal/service/auth"
	serviceCompany "github.com/timerod/timerod-backend-go/internal/service/company"
	employeeService "github.com/timerod/timerod-backend-go/internal/service/employee"
	reportService "github.com/timerod/timerod-backend-go/internal/service/report"
	scheduleService "github.com/timerod/timerod-backend-go/internal/service/schedule"
	userService "github.com/timerod/timerod-backend-go/internal/service/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	decimal.MarshalJSONWithoutQuotes = true
	response.ExposeInternalErrors = cfg.App.ExposeErrorDetail

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	areaRepo := postgresql.NewAreaRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	if err != nil {
		return fmt.Errorf("configuring jwt: %w", err)
	}

	authService := serviceAuth.NewAuthService(tx, userRepo, JWTService, refreshTokenRepo)
	companyService := serviceCompany.NewCompanyService(companyRepo)
	scheduleService := scheduleService.NewScheduleService(scheduleRepo)
	areaService := areaService.NewAreaService(areaRepo, companyRepo, userRepo, scheduleRepo)
	employeeService := employeeService.NewEmployeeService(employeeRepo, companyRepo, areaRepo, userRepo, scheduleRepo)
	userService := userService.NewUserService(tx, userRepo, companyRepo)
	attendanceService := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, scheduleRepo, attendanceService.Options{
		Location:      cfg.App.Location,
		LateDetection: cfg.Attendance.LateDetection,
	})
	reportService := reportService.NewReportService(reportRepo, cfg.App.Location)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceService, cfg.App.Location),
		Report:     appHTTP.NewReportHandler(reportService, cfg.App.Location),
		Company:    appHTTP.NewCompanyHandler(companyService),
		Area:       appHTTP.NewAreaHandler(areaService),
		Employee:   appHTTP.NewEmployeeHandler(employeeService),
		Schedule:   appHTTP.NewScheduleHandler(scheduleService),
		User:       appHTTP.NewUserHandler(userService),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
	})

	scheduler := cron.NewScheduler()
	scheduler.AddJob("prune_refresh_tokens", cfg.Cron.TokenPruneInterval, cron.NewRefreshTokenPruner(refreshTokenRepo).Prune)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "timezone", cfg.App.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
