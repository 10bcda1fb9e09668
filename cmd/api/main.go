package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pjcweb/site-backend/internal/config"
	"github.com/pjcweb/site-backend/internal/entity"
	"github.com/pjcweb/site-backend/internal/infra/database"
	"github.com/pjcweb/site-backend/internal/infra/http/handlers"
	"github.com/pjcweb/site-backend/internal/infra/http/middleware"
	"github.com/pjcweb/site-backend/internal/infra/integration/openai"
	"github.com/pjcweb/site-backend/internal/infra/integration/paypal"
	"github.com/pjcweb/site-backend/internal/infra/integration/stripe"
	"github.com/pjcweb/site-backend/internal/infra/mail"
	"github.com/pjcweb/site-backend/internal/infra/queue"
	"github.com/pjcweb/site-backend/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	txRepo := database.NewTransactionRepository(db)
	leadRepo := database.NewLeadRepository(db)
	socialRepo := database.NewSocialRepository(db)
	siteRepo := database.NewSiteRepository(db)
	affiliateRepo := database.NewAffiliateRepository(db)
	chatRepo := database.NewChatRepository(db)

	if err := socialRepo.SeedPosts(context.Background(), entity.DefaultSocialPosts()); err != nil {
		log.Printf("seeding social posts: %v", err)
	}

	// Gateways and adapters
	gateways := map[string]usecase.PaymentGateway{
		entity.ProviderStripe: stripe.NewClient(cfg.StripeAPIKey),
		entity.ProviderPayPal: paypal.NewClient(cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalBaseURL),
	}
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	chatProvider := openai.NewClient(cfg.OpenAIAPIKey, cfg.ChatModel)

	// Worker consuming paid receipts
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// Use cases
	checkoutUC := usecase.NewCheckoutUseCase(txRepo, gateways, producer, cfg.CheckoutAllowedOrigins)
	leadService := usecase.NewLeadService(leadRepo)
	chatService := usecase.NewChatService(chatProvider, chatRepo)

	// Handlers
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUC)
	webhookHandler := handlers.NewStripeWebhookHandler(checkoutUC, cfg.StripeWebhookSecret)
	paypalHandler := handlers.NewPayPalHandler(checkoutUC)
	pricingHandler := handlers.NewPricingHandler()
	leadHandler := handlers.NewLeadHandler(leadService)
	chatHandler := handlers.NewChatHandler(chatService, chatRepo)
	contentHandler := handlers.NewContentHandler(socialRepo)
	siteHandler := handlers.NewSiteHandler(siteRepo, affiliateRepo)
	seoHandler := handlers.NewSEOHandler(cfg.SiteBaseURL)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.StripeAPIKey != "", cfg.PayPalClientID != "")

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Admin-Key"},
	}))
	r.Use(middleware.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", siteHandler.Root)

		r.Post("/checkout/session", checkoutHandler.CreateSession)
		r.Get("/checkout/status/{sessionID}", checkoutHandler.GetStatus)
		r.Post("/webhook/stripe", webhookHandler.Handle)

		r.Post("/paypal/orders", paypalHandler.CreateOrder)
		r.Post("/paypal/orders/{orderID}/capture", paypalHandler.CaptureOrder)
		r.Get("/paypal/orders/{orderID}", paypalHandler.GetOrder)
		r.Post("/paypal/webhook", paypalHandler.HandleWebhook)

		r.Get("/calculate-price/{packageID}", pricingHandler.CalculatePrice)
		r.Get("/packages", pricingHandler.ListPackages)

		r.Post("/leads", leadHandler.Capture)
		r.Post("/leads/{leadID}/activity", leadHandler.RecordActivity)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.AdminKey))
			r.Get("/leads", leadHandler.List)
			r.Get("/leads/{leadID}", leadHandler.Get)
			r.Patch("/leads/{leadID}", leadHandler.UpdateStatus)
			r.Delete("/leads/{leadID}", leadHandler.Delete)
			r.Get("/leads/{leadID}/activities", leadHandler.ListActivities)
		})

		r.Post("/chat", chatHandler.Send)
		r.Get("/chat/history/{sessionID}", chatHandler.History)

		r.Post("/contact", siteHandler.SubmitContact)
		r.Post("/status", siteHandler.CreateStatusCheck)
		r.Get("/status", siteHandler.ListStatusChecks)

		r.Post("/affiliate", siteHandler.CreateAffiliateLink)
		r.Get("/affiliate", siteHandler.ListAffiliateLinks)
		r.Post("/affiliate/{linkID}/click", siteHandler.TrackAffiliateClick)

		r.Get("/blog", contentHandler.ListBlogPosts)
		r.Get("/blog/categories", contentHandler.BlogCategories)
		r.Get("/blog/{slug}", contentHandler.GetBlogPost)

		r.Get("/social/platforms", contentHandler.ListPlatforms)
		r.Get("/social/posts", contentHandler.ListSocialPosts)
		r.Get("/social/featured", contentHandler.FeaturedSocialPosts)
		r.Get("/social/posts/{postID}", contentHandler.GetSocialPost)
		r.Post("/social/posts/{postID}/engage", contentHandler.Engage)
		r.Post("/social/share", contentHandler.RecordShare)
		r.Get("/social/stats", contentHandler.ShareStats)

		r.Get("/sitemap.xml", seoHandler.Sitemap)
		r.Get("/robots.txt", seoHandler.Robots)
		r.Get("/seo/meta", seoHandler.Meta)

		r.Post("/analytics/page-view", siteHandler.RecordPageView)
		r.Get("/analytics/performance", siteHandler.Performance)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
