package main

import (
	"fmt"
	"log/slog"
	"os"

	"tableorders/cmd"
	adapterhttp "tableorders/internal/adapters/in/http"
	"tableorders/internal/adapters/out/auth"
	"tableorders/internal/adapters/out/postgres/orderrepo"
	"tableorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	root := cmd.NewCompositionRoot(configs, gormDB)

	tokenTable, err := auth.ParseTokenTable(configs.StaffTokens)
	if err != nil {
		log.Fatalf("Invalid STAFF_TOKENS value: %v", err)
	}
	staff := adapterhttp.NewStaffMiddleware(
		auth.NewStaticTokenVerifier(tokenTable),
		auth.NewStaffRoleAuthorizer(),
	)

	createOrderHandler := root.CreateCreateOrderCommandHandler()
	updateStatusHandler := root.CreateUpdateOrderStatusCommandHandler()
	confirmHandler := root.CreateConfirmOrderCommandHandler()
	deleteHandler := root.CreateDeleteOrderCommandHandler()

	server := adapterhttp.NewServer(
		&createOrderHandler,
		&updateStatusHandler,
		&confirmHandler,
		&deleteHandler,
		root.CreateGetOrdersByStatusQueryHandler(),
		root.CreateGetOrdersCreatedSinceQueryHandler(),
		logger,
	)

	jobManager := jobs.NewJobManager(root.CreateGetOrdersCreatedSinceQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	server.RegisterRoutes(e, staff)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		StaffTokens: goDotEnvVariable("STAFF_TOKENS"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}
