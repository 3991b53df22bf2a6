package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/corrida-app/corrida-backend/internal/pkg/config"
	"github.com/corrida-app/corrida-backend/internal/pkg/database"
	"github.com/corrida-app/corrida-backend/internal/pkg/health"
	"github.com/corrida-app/corrida-backend/internal/pkg/logger"
	"github.com/corrida-app/corrida-backend/internal/pkg/middleware"
	natspkg "github.com/corrida-app/corrida-backend/internal/pkg/nats"
	"github.com/corrida-app/corrida-backend/internal/pkg/server"
	driversHandler "github.com/corrida-app/corrida-backend/services/drivers/handler"
	driversRepo "github.com/corrida-app/corrida-backend/services/drivers/repository"
	driversUC "github.com/corrida-app/corrida-backend/services/drivers/usecase"
	ridesGateway "github.com/corrida-app/corrida-backend/services/rides/gateway"
	ridesHandler "github.com/corrida-app/corrida-backend/services/rides/handler"
	ridesRepo "github.com/corrida-app/corrida-backend/services/rides/repository"
	ridesUC "github.com/corrida-app/corrida-backend/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configs := config.InitConfig("config/rides.env")

	// Initialize structured logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Wire repositories, gateways and use cases
	rideRepository := ridesRepo.NewRideRepository(configs, postgresClient.GetDB())
	presenceRepository := driversRepo.NewPresenceRepository(redisClient)
	rideGateway := ridesGateway.NewRideGateway(natsClient)

	rideUseCase := ridesUC.NewRideUC(configs, rideRepository, presenceRepository, rideGateway)
	driverUseCase := driversUC.NewDriverUC(configs, presenceRepository)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(logger.EchoMiddleware(zapLogger))

	e.GET("/health", health.NewPingHandler(appName, configs.App.Version))

	mw := middleware.NewMiddleware(configs)
	ridesHandler.NewHandler(rideUseCase).RegisterRoutes(e, mw)
	driversHandler.NewHandler(driverUseCase).RegisterRoutes(e, mw)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
