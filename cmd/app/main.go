package main

import (
	"fmt"
	"net/http"
	"os"

	"ecommerce/cmd"
	httpadapter "ecommerce/internal/adapters/in/http"
	"ecommerce/internal/adapters/out/postgres/orderrepo"
	"ecommerce/internal/adapters/out/postgres/productrepo"
	"ecommerce/internal/adapters/out/postgres/tariffrepo"
	"ecommerce/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		OrderTransitionPolicy:  goDotEnvVariable("ORDER_TRANSITION_POLICY"),
		ReturnReminderSchedule: goDotEnvVariable("RETURN_REMINDER_SCHEDULE"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&productrepo.ProductDTO{},
		&tariffrepo.ShippingConfigDTO{},
		&tariffrepo.TaxRateDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateRequestReturnCommandHandler(),
		app.CreateCancelReturnCommandHandler(),
		app.CreateUpdateReturnTrackingCommandHandler(),
		app.CreateIssueRefundCommandHandler(),
		app.CreatePurgeOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateRestockProductCommandHandler(),
		app.CreateUpdateShippingConfigCommandHandler(),
		app.CreateUpdateTaxTableCommandHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetReturnedOrdersQueryHandler(),
		app.CreateGetDashboardStatsQueryHandler(),
		app.CreateQuoteOrderQueryHandler(),
		app.CreateNotificationDispatcher(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
