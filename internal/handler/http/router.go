package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions carries the app metadata and CORS origins the router needs.
type RouterOptions struct {
	AppName        string
	Version        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
}

// Handlers groups every HTTP handler mounted under /api/v1.
type Handlers struct {
	Attendance AttendanceHandler
	Dashboard  DashboardHandler
	Employee   EmployeeHandler
	Settings   SettingsHandler
	Upload     UploadHandler
	Report     ReportHandler
}

// NewLogger builds the JSON logger shared by request logging and the app.
func NewLogger(opts RouterOptions) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logger := NewLogger(opts)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Delete("/", h.Attendance.DeleteAll)
			r.Post("/import", h.Attendance.Import)
			r.Get("/date", h.Attendance.ListByDate)
			r.Get("/calendar-dates", h.Attendance.CalendarDates)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", h.Dashboard.GetDashboard)
			r.Get("/statistics", h.Dashboard.GetStatistics)
			r.Get("/monthly", h.Dashboard.GetMonthly)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/summary", h.Employee.Summary)
			r.Get("/{employeeID}/attendance", h.Employee.History)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.Settings.Get)
			r.Put("/", h.Settings.Update)
			r.Post("/recalculate", h.Settings.Recalculate)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Get("/", h.Upload.List)
			r.Get("/latest", h.Upload.Latest)
			r.Get("/latest/file", h.Upload.DownloadLatest)
		})

		r.Route("/reports/attendance", func(r chi.Router) {
			r.Get("/excel", h.Report.AttendanceExcel)
			r.Get("/pdf", h.Report.AttendancePDF)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
