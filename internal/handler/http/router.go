package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/handler/http/middleware"
	"github.com/timerod/timerod-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Company    CompanyHandler
	Area       AreaHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	User       UserHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/auth/verify", h.Auth.Verify)

			r.Route("/asistencias", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/", h.Attendance.List)
				r.With(middleware.RequirePermission(user.PermissionAttendanceClock)).Post("/entrada", h.Attendance.ClockIn)
				r.With(middleware.RequirePermission(user.PermissionAttendanceClock)).Post("/salida", h.Attendance.ClockOut)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/empleado/{empleadoId}", h.Attendance.ListByEmployee)

				r.Route("/reporte", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsView))
					r.Get("/", h.Report.GetAttendanceReport)
					r.Get("/excel", h.Report.ExportAttendanceReport)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/", h.Attendance.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionAttendanceManage))
						r.Put("/", h.Attendance.Update)
						r.Delete("/", h.Attendance.Delete)
					})
				})
			})

			r.Route("/empresas", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionCompanyView)).Get("/", h.Company.List)
				r.With(middleware.RequirePermission(user.PermissionCompanyView)).Get("/{id}", h.Company.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionCompanyManage))
					r.Post("/", h.Company.Create)
					r.Put("/{id}", h.Company.Update)
					r.Delete("/{id}", h.Company.Delete)
				})
			})

			r.Route("/areas", func(r chi.Router) {
				r.Get("/", h.Area.List)
				r.Get("/{id}", h.Area.Get)
				r.Get("/empresa/{empresaId}", h.Area.ListByCompany)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAreaManage))
					r.Post("/", h.Area.Create)
					r.Put("/{id}", h.Area.Update)
					r.Delete("/{id}", h.Area.Delete)
				})
			})

			r.Route("/empleados", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/{id}", h.Employee.GetEmployee)
					r.Get("/empresa/{empresaId}", h.Employee.ListByCompany)
					r.Get("/area/{areaId}", h.Employee.ListByArea)
					r.Get("/numero/{numero}", h.Employee.GetByNumber)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/horarios", func(r chi.Router) {
				r.Get("/", h.Schedule.ListSchedules)
				r.Get("/{id}", h.Schedule.GetSchedule)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionScheduleManage))
					r.Post("/", h.Schedule.CreateSchedule)
					r.Put("/{id}", h.Schedule.UpdateSchedule)
					r.Delete("/{id}", h.Schedule.DeleteSchedule)
				})
			})

			r.Route("/usuarios", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserView))
					r.Get("/", h.User.List)
					r.Get("/{id}", h.User.Get)
					r.Get("/empresa/{empresaId}", h.User.ListByCompany)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserManage))
					r.Post("/", h.User.Create)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
				})
			})
		})
	})
	return r
}
