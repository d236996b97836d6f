package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"katwate/config"
	"katwate/cron"
	"katwate/database"
	"katwate/database/repository"
	"katwate/handlers"
	"katwate/models"
	"katwate/routes"
	"katwate/services/auth"
	"katwate/services/booking"
	"katwate/services/catalog"
	"katwate/services/content"
	"katwate/services/events"
	"katwate/services/gallery"
	"katwate/services/guest"
	"katwate/services/notification"
	"katwate/services/staff"
	"katwate/services/storage"
	"katwate/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.InitRedis()
	utils.FirebaseInit()
	defer utils.FirebaseClose()

	var mongoDB *mongo.Database
	if config.AppConfig.StoreBackend == repository.BackendMongo {
		database.InitDB()
		mongoDB = database.Database()
	}
	stores, err := repository.NewStores(config.AppConfig.StoreBackend, utils.FirestoreClient, mongoDB)
	if err != nil {
		logger.Fatal("main: failed to open document store", zap.Error(err))
	}

	rootCtx, stopMonitors := context.WithCancel(context.Background())
	defer stopMonitors()
	utils.StartHealthMonitor(rootCtx,
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		storePinger())

	// messaging.
	publisher, err := events.NewPublisher(config.AppConfig.AMQPURL, config.AppConfig.AMQPExchange)
	if err != nil {
		logger.Warn("main: enquiry events disabled", zap.Error(err))
		publisher = events.NoopPublisher{}
	}
	defer publisher.Close()

	notificationService := notification.NewDefaultNotificationService(utils.FCMClient, config.AppConfig.StaffNotificationTopic)

	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()
	reminderWorker := cron.InitReminderWorker(rootCtx, notificationService)

	// services.
	identity, err := auth.NewFirebaseIdentity(rootCtx, config.AppConfig.FirebaseWebAPIKey, utils.AuthClient)
	if err != nil {
		logger.Fatal("main: failed to initialize identity provider", zap.Error(err))
	}
	throttle := auth.NewLoginThrottle(
		utils.GetCacheClient(),
		config.AppConfig.LoginMaxAttempts,
		time.Duration(config.AppConfig.LoginWindowMinutes)*time.Minute,
	)
	authService := auth.NewAuthService(
		identity,
		stores.Profiles,
		utils.GetAuthCacheClient(),
		throttle,
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	staffService := staff.NewStaffService(identity, stores.Profiles)

	catalogService := catalog.NewCatalogService()
	bookingService := booking.NewBookingService(
		catalogService,
		publisher,
		notificationService,
		config.AppConfig.ResortName,
		config.AppConfig.OwnerWhatsAppNumber,
		config.AppConfig.ResortTimezone,
	)

	guestService := guest.NewGuestService(stores.Guests, reminderClient, models.RoomAvailability{
		Single: config.AppConfig.RoomsSingle,
		Double: config.AppConfig.RoomsDouble,
		Suite:  config.AppConfig.RoomsSuite,
	}, config.AppConfig.ResortTimezone)

	var mediaStore storage.StorageService
	if cld, err := utils.InitCloudinary(); err != nil {
		logger.Warn("main: gallery uploads disabled", zap.Error(err))
	} else {
		mediaStore = storage.NewCloudinaryStorage(cld)
	}
	galleryService := gallery.NewGalleryService(stores.Gallery, mediaStore)

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		authService,
		&handlers.ContentHandler{ContentService: content.NewContentService()},
		&handlers.CatalogHandler{CatalogService: catalogService},
		&handlers.BookingHandler{BookingService: bookingService, CatalogService: catalogService},
		&handlers.GalleryHandler{GalleryService: galleryService},
		&handlers.AdminHandler{AuthService: authService, StaffService: staffService},
		&handlers.GuestHandler{GuestService: guestService},
	)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxies); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.MaxRequestsPerMin)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("store", config.AppConfig.StoreBackend))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	stopMonitors()
	reminderWorker.Shutdown()
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}

// storePinger checks whichever document store is open.
func storePinger() func(context.Context) error {
	if database.MongoClient != nil {
		return func(ctx context.Context) error {
			return database.MongoClient.Ping(ctx, nil)
		}
	}
	return func(ctx context.Context) error {
		if utils.FirestoreClient == nil {
			return nil
		}
		_, err := utils.FirestoreClient.Collection("guests").Limit(1).Documents(ctx).GetAll()
		return err
	}
}
