package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/tavola-crm/internal/infra/database"
	"github.com/xavierca1/tavola-crm/internal/infra/http/handlers"
	"github.com/xavierca1/tavola-crm/internal/infra/http/middleware"
	"github.com/xavierca1/tavola-crm/internal/infra/integration/whatsapp"
	"github.com/xavierca1/tavola-crm/internal/infra/mail"
	"github.com/xavierca1/tavola-crm/internal/infra/queue"
	"github.com/xavierca1/tavola-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	reservationRepo := database.NewReservationRepository(db)
	eventRepo := database.NewLeadEventRepository(db)

	// 2. Notification plumbing
	producer := queue.NewProducer(
		rabbitMQ.Conn, rabbitMQ.Ch,
		os.Getenv("RESTAURANT_NAME"),
		os.Getenv("RESTAURANT_PHONE"),
	)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@tavola.app"),
	)
	waSender := mail.NewWhatsAppSender(whatsapp.NewClient())

	// 3. Worker (consumes confirmations and delivers email/WhatsApp)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, waSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	markContactedUC := usecase.NewMarkContactedUseCase(leadRepo, eventRepo)
	closeLeadUC := usecase.NewCloseLeadUseCase(leadRepo, eventRepo)
	convertLeadUC := usecase.NewConvertLeadUseCase(leadRepo, reservationRepo, eventRepo)
	createReservationUC := usecase.NewCreateReservationUseCase(reservationRepo)
	updateReservationUC := usecase.NewUpdateReservationStatusUseCase(reservationRepo, leadRepo, producer)

	// 5. Handlers
	actionHandler := handlers.NewActionHandler(
		createLeadUC, markContactedUC, closeLeadUC,
		convertLeadUC, createReservationUC, updateReservationUC,
	)
	leadHandler := handlers.NewLeadHandler(leadRepo, eventRepo)
	reservationHandler := handlers.NewReservationHandler(reservationRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.HandleFunc("/api/actions", actionHandler.Handle)

	r.Route("/api/admin/{restaurantID}", func(r chi.Router) {
		r.Get("/leads", leadHandler.HandleList)
		r.Delete("/leads/{leadID}", leadHandler.HandleDelete)
		r.Get("/leads/{leadID}/events", leadHandler.HandleEvents)
		r.Get("/reservations", reservationHandler.HandleList)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Tavola CRM running on port %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
