package http

import (
	"log/slog"
	"os"

	"github.com/emiratehr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokenAuth *jwtauth.JWTAuth,
	masterHandler MasterHandler,
	employeeHandler EmployeeHandler,
	attachmentHandler AttachmentHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(middleware.AuthRequired(tokenAuth))

		r.Route("/contract-types", func(r chi.Router) {
			r.Post("/", masterHandler.CreateContractType)
			r.Get("/", masterHandler.ListContractTypes)
			r.Get("/{id}", masterHandler.GetContractType)
			r.Put("/{id}", masterHandler.UpdateContractType)
			r.Delete("/{id}", masterHandler.DeleteContractType)
		})

		r.Route("/job-titles", func(r chi.Router) {
			r.Post("/", masterHandler.CreateJobTitle)
			r.Get("/", masterHandler.ListJobTitles)
			r.Get("/{id}", masterHandler.GetJobTitle)
			r.Put("/{id}", masterHandler.UpdateJobTitle)
			r.Delete("/{id}", masterHandler.DeleteJobTitle)
		})

		r.Route("/departments", func(r chi.Router) {
			r.Post("/", masterHandler.CreateDepartment)
			r.Get("/", masterHandler.ListDepartments)
			r.Get("/{id}", masterHandler.GetDepartment)
			r.Put("/{id}", masterHandler.UpdateDepartment)
			r.Delete("/{id}", masterHandler.DeleteDepartment)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Post("/", masterHandler.CreateLocation)
			r.Get("/", masterHandler.ListLocations)
			r.Get("/{id}", masterHandler.GetLocation)
			r.Put("/{id}", masterHandler.UpdateLocation)
			r.Delete("/{id}", masterHandler.DeleteLocation)
		})

		r.Route("/field-types", func(r chi.Router) {
			r.Post("/", masterHandler.CreateFieldType)
			r.Get("/", masterHandler.ListFieldTypes)
			r.Get("/{id}", masterHandler.GetFieldType)
			r.Put("/{id}", masterHandler.UpdateFieldType)
			r.Delete("/{id}", masterHandler.DeleteFieldType)
		})

		r.Route("/banks", func(r chi.Router) {
			r.Post("/", masterHandler.CreateBank)
			r.Get("/", masterHandler.ListBanks)
			r.Get("/{id}", masterHandler.GetBank)
			r.Put("/{id}", masterHandler.UpdateBank)
			r.Delete("/{id}", masterHandler.DeleteBank)
		})

		r.Route("/country-codes", func(r chi.Router) {
			r.Post("/", masterHandler.CreateCountryCode)
			r.Get("/", masterHandler.ListCountryCodes)
			r.Get("/dropdown", masterHandler.ListCountryCodeDropdown)
			r.Get("/{id}", masterHandler.GetCountryCode)
			r.Put("/{id}", masterHandler.UpdateCountryCode)
			r.Delete("/{id}", masterHandler.DeleteCountryCode)
		})

		r.Route("/designations", func(r chi.Router) {
			r.Post("/", masterHandler.CreateDesignation)
			r.Get("/", masterHandler.ListDesignations)
			r.Get("/{id}", masterHandler.GetDesignation)
			r.Put("/{id}", masterHandler.UpdateDesignation)
			r.Delete("/{id}", masterHandler.DeleteDesignation)
		})

		r.Route("/custom-fields", func(r chi.Router) {
			r.Post("/", masterHandler.CreateCustomField)
			r.Get("/", masterHandler.ListCustomFields)
			r.Get("/selected", masterHandler.ListSelectedCustomFields)
			r.Get("/{id}", masterHandler.GetCustomField)
			r.Put("/{id}", masterHandler.UpdateCustomField)
			r.Delete("/{id}", masterHandler.DeleteCustomField)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.List)
			r.Get("/visa-expiry-alert", employeeHandler.VisaExpiryAlert)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)

			r.Get("/{id}/attachments", attachmentHandler.ListByEmployee)
		})

		r.Route("/attachments", func(r chi.Router) {
			r.Post("/", attachmentHandler.Upload)
			r.Get("/{id}", attachmentHandler.Get)
			r.Delete("/{id}", attachmentHandler.Delete)
		})
	})

	return r
}

