package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/employee"
	reportService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/report"
	settingsService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/settings"
	uploadService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/upload"
)

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	routerOpts := appHTTP.RouterOptions{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Env:            cfg.App.Env,
		LogLevel:       parseLogLevel(cfg.App.LogLevel),
		AllowedOrigins: cfg.App.CORSOrigins,
	}
	slog.SetDefault(appHTTP.NewLogger(routerOpts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	uploadRepo := postgresql.NewUploadRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	case "s3":
		fileStorage, err = storage.NewS3Storage(ctx, cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.Prefix)
		if err != nil {
			log.Fatal("Failed to initialize s3 storage:", err)
		}
	default:
		log.Fatal("Unsupported storage types: ", cfg.Storage.Type)
	}

	configStore := settingsService.NewStore(settingsRepo)
	if err := configStore.Load(ctx); err != nil {
		log.Fatal("Failed to load schedule settings:", err)
	}

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		uploadRepo,
		configStore,
		fileStorage,
		attendanceService.Options{
			Workers:      cfg.Import.Workers,
			MaxFileBytes: cfg.MaxUploadBytes(),
		},
	)
	recalcSvc := attendanceSvc
	if cfg.Recalculation.Workers != cfg.Import.Workers {
		recalcSvc = attendanceService.NewAttendanceService(
			db,
			attendanceRepo,
			employeeRepo,
			uploadRepo,
			configStore,
			fileStorage,
			attendanceService.Options{
				Workers:      cfg.Recalculation.Workers,
				MaxFileBytes: cfg.MaxUploadBytes(),
			},
		)
	}
	settingsSvc := settingsService.NewSettingsService(configStore)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo)
	uploadSvc := uploadService.NewUploadService(uploadRepo, fileStorage)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, configStore)

	// Nightly resume of recalculations interrupted before every record was stamped
	var scheduler *cron.Scheduler
	if cfg.Recalculation.CronSpec != "" {
		loc, err := time.LoadLocation(cfg.Recalculation.Timezone)
		if err != nil {
			log.Fatal("Invalid RECALC_TIMEZONE:", err)
		}
		scheduler = cron.NewScheduler(loc)
		if err := cron.NewAttendanceJobs(recalcSvc).RegisterJobs(scheduler, cfg.Recalculation.CronSpec); err != nil {
			log.Fatal("Failed to register cron jobs:", err)
		}
		scheduler.Start()
	}

	router := appHTTP.NewRouter(routerOpts, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, cfg.MaxUploadBytes()),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc, recalcSvc),
		Upload:     appHTTP.NewUploadHandler(uploadSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	if scheduler != nil {
		scheduler.Stop()
	}
}
