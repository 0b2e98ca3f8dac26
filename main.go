package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelier/config"
	"hotelier/database"
	"hotelier/database/repository"
	"hotelier/handlers"
	"hotelier/middleware"
	"hotelier/routes"
	"hotelier/services/billing"
	"hotelier/services/booking"
	"hotelier/services/payment"
	"hotelier/services/tasks"
	"hotelier/utils"
	"hotelier/worker"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("main: invalid config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.DatabaseName)

	// The processed-event cache is optional; without it duplicates are
	// caught by the payments unique index.
	var eventCache payment.EventCache
	redisClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Warn("main: redis unavailable, running without processed-event cache", zap.Error(err))
	} else {
		eventCache = payment.NewRedisEventCache(redisClient, cfg.ProcessedEventTTL)
	}

	// repositories.
	bookingStore, err := repository.NewMongoBookingRepo(db)
	if err != nil {
		logger.Fatal("main: failed to init booking repository", zap.Error(err))
	}
	billStore, err := repository.NewMongoBillRepo(db)
	if err != nil {
		logger.Fatal("main: failed to init bill repository", zap.Error(err))
	}
	paymentStore, err := repository.NewMongoPaymentRepo(db)
	if err != nil {
		logger.Fatal("main: failed to init payment repository", zap.Error(err))
	}

	// services.
	stripeCfg := cfg.Stripe()
	bookingService := booking.NewBookingService(bookingStore, logger)
	billService := billing.NewBillService(billStore, bookingStore, cfg.DefaultCurrency, logger)
	gateway := payment.NewStripeGateway(stripeCfg, billService, logger)

	// With Redis, bill settlement after a payment goes through the job queue
	// so it is retried; without it the listener settles inline.
	var settler payment.BillSettler = billService
	var jobServer *asynq.Server
	if redisClient != nil {
		redisOpt := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		queue := asynq.NewClient(redisOpt)
		defer queue.Close()
		settler = &tasks.QueuedSettler{Queue: queue}

		jobServer = worker.NewServer(redisOpt, logger)
		if err := jobServer.Start(worker.NewMux(billService, logger)); err != nil {
			logger.Fatal("main: failed to start job worker", zap.Error(err))
		}
	}
	listener := payment.NewWebhookListener(stripeCfg, paymentStore, settler, eventCache, logger)

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	billHandler := handlers.NewBillHandler(billService, logger)
	paymentHandler := handlers.NewPaymentHandler(gateway, payment.NewRecords(paymentStore), logger)
	webhookHandler := handlers.NewWebhookHandler(listener, logger)
	health := &utils.HealthChecker{Mongo: mongoClient, Redis: redisClient}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthMiddleware: middleware.JWTAuthMiddleware(cfg.JWTSecret, logger),
		HealthHandler:  handlers.HealthHandler(health),

		// Booking endpoints.
		QuoteHandler:         bookingHandler.QuoteHandler,
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		GetBookingHandler:    bookingHandler.GetBookingHandler,
		UpdateBookingHandler: bookingHandler.UpdateBookingHandler,
		DeleteBookingHandler: bookingHandler.DeleteBookingHandler,

		// Bill endpoints.
		CreateBillHandler:  billHandler.CreateBillHandler,
		ListBillsHandler:   billHandler.ListBillsHandler,
		GetBillHandler:     billHandler.GetBillHandler,
		UpdateBillHandler:  billHandler.UpdateBillHandler,
		DeleteBillHandler:  billHandler.DeleteBillHandler,
		BillReceiptHandler: billHandler.ReceiptHandler,

		// Payment endpoints.
		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntentHandler,
		ListPaymentsHandler:        paymentHandler.ListPaymentsHandler,
		GetPaymentHandler:          paymentHandler.GetPaymentHandler,
		StripeWebhookHandler:       webhookHandler.StripeWebhookHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if jobServer != nil {
		jobServer.Shutdown()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
