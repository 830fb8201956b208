package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"quickdrop/config"
	"quickdrop/cron"
	"quickdrop/database"
	recordsRepo "quickdrop/database/repository/records"
	"quickdrop/handlers"
	"quickdrop/middleware"
	"quickdrop/routes"
	"quickdrop/services/booking"
	"quickdrop/services/catalog"
	"quickdrop/services/notification"
	"quickdrop/services/pod"
	"quickdrop/services/pricing"
	"quickdrop/services/storage"
	"quickdrop/services/tracking"
	"quickdrop/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDraftCache()
	utils.StartHealthMonitor(utils.GetDraftCacheClient(), database.MongoClient)

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	records := recordsRepo.NewMongoRecordRepo()

	// services.
	cat := catalog.New()
	engine := pricing.NewEngine(cat)

	draftTTL := time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute
	draftStore := booking.NewRedisDraftStore(utils.GetDraftCacheClient(), draftTTL)
	draftService := &booking.DefaultDraftService{
		Store:   draftStore,
		Catalog: cat,
		Engine:  engine,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	dispatcher := notification.NewDispatcher(asynqClient)
	cron.InitNotificationWorker(notification.NewLogNotificationService())

	var cardGateway, offlineGateway booking.PaymentGateway
	if config.AppConfig.PaymentGateway == "stripe" && config.AppConfig.StripeKey != "" {
		stripeGateway := &booking.StripeGateway{Logger: logger}
		cardGateway = stripeGateway
		offlineGateway = stripeGateway
	} else {
		cardGateway = booking.NewSimulatedGateway(
			time.Duration(config.AppConfig.PaymentLatencyMS)*time.Millisecond,
			config.AppConfig.PaymentSuccessRate, nil, logger,
		)
		offlineGateway = booking.NewSimulatedGateway(
			time.Duration(config.AppConfig.OfflineVerifyLatencyMS)*time.Millisecond,
			config.AppConfig.PaymentSuccessRate, nil, logger,
		)
	}

	checkoutEngine := &booking.CheckoutEngine{
		Drafts:         draftStore,
		Engine:         engine,
		Records:        records,
		Gateway:        cardGateway,
		OfflineGateway: offlineGateway,
		Notifier:       dispatcher,
	}

	podService := &pod.DefaultPODService{Records: records}
	trackingService := tracking.NewService(records)

	catalogHandler := &handlers.CatalogHandler{Catalog: cat}
	draftHandler := &handlers.DraftHandler{Service: draftService, Catalog: cat}
	checkoutHandler := &handlers.CheckoutHandler{Engine: checkoutEngine}
	podHandler := &handlers.PODHandler{Service: podService, StorageSvc: storageService}
	trackingHandler := &handlers.TrackingHandler{Service: trackingService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		GetCatalogHandler:  catalogHandler.GetCatalogHandler,
		GetPoliciesHandler: catalogHandler.GetPoliciesHandler,

		// Draft endpoints.
		CreateDraftHandler:    draftHandler.CreateDraftHandler,
		GetDraftHandler:       draftHandler.GetDraftHandler,
		SetServiceTypeHandler: draftHandler.SetServiceTypeHandler,
		SelectPackageHandler:  draftHandler.SelectPackageHandler,
		ToggleAddOnHandler:    draftHandler.ToggleAddOnHandler,
		AddItemHandler:        draftHandler.AddItemHandler,
		UpdateItemHandler:     draftHandler.UpdateItemHandler,
		RemoveItemHandler:     draftHandler.RemoveItemHandler,
		SetDetailsHandler:     draftHandler.SetDetailsHandler,
		ResetDraftHandler:     draftHandler.ResetDraftHandler,
		DiscardDraftHandler:   draftHandler.DiscardDraftHandler,

		// Checkout endpoints.
		CheckoutHandler:            checkoutHandler.CheckoutDraftHandler,
		ConfirmOfflineHandler:      checkoutHandler.ConfirmOfflineHandler,
		ResendNotificationsHandler: checkoutHandler.ResendNotificationsHandler,

		// Proof-of-delivery endpoints.
		MarkInTransitHandler:    podHandler.MarkInTransitHandler,
		DriverCompleteHandler:   podHandler.DriverCompleteHandler,
		CustomerDecisionHandler: podHandler.CustomerDecisionHandler,
		GetPODHandler:           podHandler.GetPODHandler,

		// Tracking endpoints.
		TrackBookingHandler: trackingHandler.TrackBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
