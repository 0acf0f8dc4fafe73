package main

import (
	"context"
	"handicare-service/internal/app/config"
	"handicare-service/internal/app/delivery/http/controllers"
	"handicare-service/internal/app/delivery/http/middlewares"
	"handicare-service/internal/app/delivery/http/routers"
	"handicare-service/internal/app/drivers/database"
	"handicare-service/internal/app/drivers/logger"
	"handicare-service/internal/app/drivers/messaging"
	"handicare-service/internal/app/services/core/matching"
	"handicare-service/internal/app/services/core/schedule"
	"handicare-service/internal/app/services/core/session"
	"handicare-service/internal/app/services/shared/locker"
	"handicare-service/internal/app/services/shared/notifier"
	sharedredis "handicare-service/internal/app/services/shared/redis"
	"handicare-service/internal/pkg/constvars"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		stdlog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			stdlog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	stdlog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		stdlog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		stdlog.Printf("Error during shutdown: %v", err)
	}

	stdlog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionService := session.NewSessionService(redisRepository)

	matchNotifier, err := notifier.NewMatchNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig.Matching.MatchQueue, bootstrap.Logger)
	if err != nil {
		stdlog.Fatalf("Failed to initialize match notifier: %v", err)
	}

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Schedule
	slotCatalog := schedule.NewCatalog(bootstrap.InternalConfig.Schedule)
	scheduleGateway := schedule.NewRedisScheduleGateway(redisRepository, bootstrap.InternalConfig.Schedule, bootstrap.Logger)
	scheduleUsecase := schedule.NewScheduleUsecase(scheduleGateway, slotCatalog, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Matching
	matchRepository := matching.NewMatchMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
		constvars.MongoCollectionMeetingMatches,
	)
	matchingUsecase := matching.NewMatchingUsecase(
		redisRepository,
		scheduleGateway,
		matchRepository,
		matchNotifier,
		bootstrap.InternalConfig.Schedule,
		bootstrap.Logger,
	)
	matchingController := controllers.NewMatchingController(bootstrap.Logger, matchingUsecase)

	matchingWorker := matching.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, matchingUsecase)
	matchingWorker.Start(context.Background())
	bootstrap.MatchingWorkerStop = matchingWorker.Stop

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, scheduleController, matchingController)
}
