package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordertrack/cmd"
	httpin "ordertrack/internal/adapters/in/http"
	kafkaout "ordertrack/internal/adapters/out/kafka"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/statusrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	redisClient := goredis.NewClient(&goredis.Options{Addr: configs.RedisHost})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := app.CreateConsumer()
	consumer.Start(ctx)
	defer func() {
		if err := consumer.Stop(); err != nil {
			logger.Error("Consumer shutdown failed", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	publisher := app.CreateCommandPublisher()
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Publisher shutdown failed", "error", err)
		}
	}()

	startWebServer(&app, publisher, configs.HTTPPort)
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
		RedisHost:              goDotEnvVariable("REDIS_HOST"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:     goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderCreateTopic:  goDotEnvVariable("KAFKA_ORDER_CREATE_TOPIC"),
		KafkaOrderUpdateTopic:  goDotEnvVariable("KAFKA_ORDER_UPDATE_TOPIC"),
		KafkaStatusChangeTopic: goDotEnvVariable("KAFKA_STATUS_CHANGE_TOPIC"),
		KafkaOrderDeleteTopic:  goDotEnvVariable("KAFKA_ORDER_DELETE_TOPIC"),
		UserServiceBaseURL:     goDotEnvVariable("USER_SERVICE_BASE_URL"),
		ProductServiceBaseURL:  goDotEnvVariable("PRODUCT_SERVICE_BASE_URL"),
		ReviewServiceBaseURL:   goDotEnvVariable("REVIEW_SERVICE_BASE_URL"),
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

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &statusrepo.RecordDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, publisher *kafkaout.CommandPublisher, port string) {
	e := echo.New()

	server := httpin.NewServer(
		publisher,
		app.CreateEntityResolver(&http.Client{}),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetCurrentStatusQueryHandler(),
		app.CreateGetCurrentStatusesQueryHandler(),
		app.CreateGetCurrentStatusBatchQueryHandler(),
		app.CreateGetStatusHistoryQueryHandler(),
		app.CreateGetStatusRecordQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
