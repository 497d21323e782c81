package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/config"
	"github.com/Muhammedsajid10/spaBackend/internal/fixtures"
	appHTTP "github.com/Muhammedsajid10/spaBackend/internal/handler/http"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/cron"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/email"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/jwt"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/oauth"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/storage"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/stripe"
	"github.com/Muhammedsajid10/spaBackend/internal/repository/postgresql"
	attendanceService "github.com/Muhammedsajid10/spaBackend/internal/service/attendance"
	serviceAuth "github.com/Muhammedsajid10/spaBackend/internal/service/auth"
	bookingService "github.com/Muhammedsajid10/spaBackend/internal/service/booking"
	catalogService "github.com/Muhammedsajid10/spaBackend/internal/service/catalog"
	employeeService "github.com/Muhammedsajid10/spaBackend/internal/service/employee"
	feedbackService "github.com/Muhammedsajid10/spaBackend/internal/service/feedback"
	"github.com/Muhammedsajid10/spaBackend/internal/service/file"
	giftcardService "github.com/Muhammedsajid10/spaBackend/internal/service/giftcard"
	membershipService "github.com/Muhammedsajid10/spaBackend/internal/service/membership"
	paymentService "github.com/Muhammedsajid10/spaBackend/internal/service/payment"
	scheduleService "github.com/Muhammedsajid10/spaBackend/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	giftCardRepo := postgresql.NewGiftCardRepository(db)
	membershipRepo := postgresql.NewMembershipRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.Dir, cfg.App.BaseURL+cfg.Storage.PublicPrefix)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	var stripeClient *stripe.Client
	var webhookVerifier *stripe.WebhookVerifier
	if cfg.Stripe.SecretKey != "" {
		stripeClient = stripe.NewClient(cfg.Stripe)
		webhookVerifier = stripe.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, employeeRepo, JWTService, GoogleService)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, employeeRepo, bookingRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, scheduleRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, scheduleSvc, bookingRepo, attendanceRepo, feedbackRepo, fileService)
	catalogSvc := catalogService.NewCatalogService(db, catalogRepo)
	bookingSvc := bookingService.NewBookingService(db, bookingRepo, catalogRepo, userRepo, emailService)
	paymentSvc := paymentService.NewPaymentService(db, paymentRepo, bookingRepo, stripeClient, webhookVerifier)
	giftCardSvc := giftcardService.NewGiftCardService(db, giftCardRepo, emailService)
	membershipSvc := membershipService.NewMembershipService(db, membershipRepo)
	feedbackSvc := feedbackService.NewFeedbackService(db, feedbackRepo, bookingRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := fixtures.SeedDefaults(ctx, catalogRepo, giftCardRepo, membershipRepo); err != nil {
		log.Fatal("Failed to seed default data:", err)
	}

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	cron.NewExpiryJobs(giftCardRepo, membershipRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService, GoogleService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Catalog:    appHTTP.NewCatalogHandler(catalogSvc),
		Booking:    appHTTP.NewBookingHandler(bookingSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentSvc),
		GiftCard:   appHTTP.NewGiftCardHandler(giftCardSvc),
		Membership: appHTTP.NewMembershipHandler(membershipSvc),
		Feedback:   appHTTP.NewFeedbackHandler(feedbackSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
