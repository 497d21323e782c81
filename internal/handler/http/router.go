package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/handler/http/middleware"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	Attendance AttendanceHandler
	Catalog    CatalogHandler
	Booking    BookingHandler
	Payment    PaymentHandler
	GiftCard   GiftCardHandler
	Membership MembershipHandler
	Feedback   FeedbackHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "spa-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Gateway webhooks authenticate by signature, not JWT
		r.Post("/payments/webhook", h.Payment.Webhook)

		// Public catalog browsing
		r.Get("/categories", h.Catalog.ListCategories)
		r.Get("/services", h.Catalog.ListServices)
		r.Get("/services/{id}", h.Catalog.GetService)
		r.Get("/gift-cards/templates", h.GiftCard.ListTemplates)
		r.Get("/memberships/plans", h.Membership.ListPlans)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.Route("/employees", func(r chi.Router) {
				// Self-service endpoints for staff
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/check-out", h.Attendance.CheckOut)
					r.Post("/mark-absent", h.Attendance.MarkAbsent)
					r.Get("/my-attendance", h.Attendance.GetMyAttendance)
					r.Get("/my-schedule", h.Schedule.GetMySchedule)
					r.Get("/my-ratings", h.Employee.GetMyRatings)

					// Employees reach their own record here; the service
					// rejects anyone else's id for non-managers.
					r.Get("/{id}", h.Employee.GetByID)
					r.Patch("/{id}", h.Employee.Update)
					r.Get("/{id}/performance", h.Employee.GetPerformance)
					r.Get("/{id}/schedule", h.Schedule.GetEmployeeSchedule)
				})

				r.Get("/available", h.Employee.GetAvailable)

				// Management endpoints
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/search", h.Employee.Search)
					r.Get("/stats", h.Employee.Stats)
					r.Delete("/{id}", h.Employee.Deactivate)
					r.Patch("/{id}/availability", h.Employee.UpdateAvailability)
					r.Post("/{id}/documents", h.Employee.UploadDocument)
					r.Put("/{id}/schedule", h.Schedule.UpdateWeek)
				})
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", h.Booking.Create)
				r.Get("/my", h.Booking.ListMine)
				r.Get("/{id}", h.Booking.GetByID)
				r.Post("/{id}/cancel", h.Booking.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", h.Booking.List)
					r.Patch("/{id}/status", h.Booking.UpdateStatus)
				})
			})

			// Catalog management
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/categories", h.Catalog.CreateCategory)
				r.Delete("/categories/{id}", h.Catalog.DeleteCategory)
				r.Post("/services", h.Catalog.CreateService)
				r.Patch("/services/{id}", h.Catalog.UpdateService)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/create-payment-intent", h.Payment.CreateIntent)
				r.Post("/confirm-payment", h.Payment.Confirm)
				r.Get("/status/{intentId}", h.Payment.Status)
				r.Get("/history", h.Payment.History)
				r.Get("/gateways", h.Payment.Gateways)
				r.Get("/{id}", h.Payment.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/refund", h.Payment.Refund)
					r.Get("/cash-movements", h.Payment.CashMovements)
				})
			})

			r.Route("/gift-cards", func(r chi.Router) {
				r.Post("/purchase", h.GiftCard.Purchase)
				r.Get("/my", h.GiftCard.ListMine)
				r.Get("/code/{code}", h.GiftCard.GetByCode)
				r.Get("/code/{code}/validate", h.GiftCard.ValidateCard)
				r.Post("/redeem", h.GiftCard.Redeem)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/templates", h.GiftCard.CreateTemplate)
					r.Patch("/templates/{id}", h.GiftCard.UpdateTemplate)
					r.Post("/{id}/cancel", h.GiftCard.Cancel)
					r.Get("/stats", h.GiftCard.Stats)
				})
			})

			r.Route("/memberships", func(r chi.Router) {
				r.Post("/purchase", h.Membership.Purchase)
				r.Get("/my", h.Membership.ListMine)
				r.Get("/{id}", h.Membership.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Post("/use-session", h.Membership.UseSession)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/plans", h.Membership.CreatePlan)
					r.Post("/{id}/cancel", h.Membership.Cancel)
				})
			})

			r.Route("/feedback", func(r chi.Router) {
				r.Post("/", h.Feedback.Submit)
				r.Get("/my", h.Feedback.ListMine)
				r.Get("/booking/{bookingId}", h.Feedback.GetByBooking)
				r.Get("/employee/{employeeId}", h.Feedback.ListByEmployee)
				r.Get("/employee/{employeeId}/summary", h.Feedback.EmployeeSummary)
				r.Get("/service/{serviceId}", h.Feedback.ListByService)
				r.Get("/service/{serviceId}/summary", h.Feedback.ServiceSummary)
			})
		})
	})
	return r
}
