package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"staffing/cmd"
	"staffing/internal/adapters/out/messaging"
	"staffing/internal/adapters/out/postgres/counterrepo"
	"staffing/internal/adapters/out/postgres/jobpostrepo"
	"staffing/internal/adapters/out/postgres/messagerepo"
	"staffing/internal/adapters/out/postgres/notificationrepo"
	"staffing/internal/adapters/out/postgres/profilerepo"
	"staffing/internal/adapters/out/postgres/userrepo"
	"staffing/internal/adapters/out/redisotp"
	"staffing/internal/jobs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	broadcaster, err := messaging.NewRabbitMQBroadcaster(configs.AmqpURL, logger)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer broadcaster.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	app, err := cmd.NewCompositionRoot(
		configs,
		gormDB,
		broadcaster,
		redisotp.NewRedisOTPStore(redisClient),
		logger,
	)
	if err != nil {
		logger.Error("failed to assemble application", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(app.CreateRetryPendingDeliveriesCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file found, relying on environment", "error", err)
	}

	return cmd.Config{
		HTTPPort:      os.Getenv("HTTP_PORT"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     os.Getenv("DB_SSLMODE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AmqpURL:       os.Getenv("AMQP_URL"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      os.Getenv("MAIL_FROM"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TempDir:       os.Getenv("TEMP_DIR"),
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&jobpostrepo.JobPostDTO{},
		&userrepo.UserDTO{},
		&profilerepo.ProfileDTO{},
		&messagerepo.MessageDTO{},
		&notificationrepo.NotificationDTO{},
		&counterrepo.CounterDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateServer().RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
