package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shipments/cmd"
	_ "shipments/docs"
	httpadapter "shipments/internal/adapters/in/http"
	"shipments/internal/adapters/out/pdf"
	"shipments/internal/adapters/out/postgres/historyrepo"
	"shipments/internal/adapters/out/postgres/shipmentrepo"
	"shipments/internal/adapters/out/postgres/userrepo"
	"shipments/internal/jobs"
)

const (
	defaultTokenLifetimeHours = 168 // 7 days
	defaultStaleAgeHours      = 48
)

// @title Shipment Tracking API
// @version 1.0
// @description Courier shipment tracking backend.
// @BasePath /api
func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(db, hoursOrDefault(configs.StaleShipmentAgeHrs, defaultStaleAgeHours), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:           goDotEnvVariable("JWT_SECRET"),
		JWTExpiresHours:     goDotEnvVariable("JWT_EXPIRES_HOURS"),
		StaleShipmentAgeHrs: goDotEnvVariable("STALE_SHIPMENT_AGE_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&shipmentrepo.ShipmentDTO{},
		&historyrepo.StatusHistoryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	tokens := httpadapter.NewTokenService(
		configs.JWTSecret,
		hoursOrDefault(configs.JWTExpiresHours, defaultTokenLifetimeHours),
	)

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateDuplicateShipmentCommandHandler(),
		app.CreateAddStatusUpdateCommandHandler(),
		app.CreateCreateUserCommandHandler(),
		app.CreateUpdateUserCommandHandler(),
		app.CreateDeleteUserCommandHandler(),
		app.CreateChangePasswordCommandHandler(),
		app.CreateGetShipmentsQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateTrackShipmentQueryHandler(),
		app.CreateGetStatusHistoryQueryHandler(),
		app.CreateGetUsersQueryHandler(),
		app.CreateGetUserQueryHandler(),
		app.UnitOfWorkFactory(),
		tokens,
		pdf.NewInvoiceRenderer(),
	)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func hoursOrDefault(raw string, fallback int) time.Duration {
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		hours = fallback
	}
	return time.Duration(hours) * time.Hour
}
