package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	postgresStorage "github.com/collegevents/backend/internal/adapters/database/postgres"
	redisAdapter "github.com/collegevents/backend/internal/adapters/database/redis"
	"github.com/collegevents/backend/pkg/logger"
	"github.com/collegevents/backend/pkg/smtp"
)

type Config struct {
	Database *gorm.DB
	Redis    *redisAdapter.Client
	SMTP     *smtp.Client // nil when smtp is disabled

	HTTPAddr  string
	JWTSecret string
	JWTTTL    time.Duration
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	var gormConfig *gorm.Config
	if viper.GetBool("settings.debug") {
		newLogger := gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
		// TranslateError turns driver errors into gorm sentinels; the
		// services depend on gorm.ErrDuplicatedKey for conflicts.
		gormConfig = &gorm.Config{
			Logger:         newLogger,
			TranslateError: true,
		}
	} else {
		gormConfig = &gorm.Config{
			TranslateError: true,
		}
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
	)

	database, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		logger.Log.Panicf("Failed to connect to the database: %v", err)
	} else {
		logger.Log.Info("Successfully connected to the database")
	}

	errMigrate := database.AutoMigrate(postgresStorage.Migrations...)
	if errMigrate != nil {
		logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
	}

	redisClient, err := redisAdapter.New(redisAdapter.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	} else {
		logger.Log.Info("Successfully connected to redis")
	}

	var smtpClient *smtp.Client
	if viper.GetBool("service.smtp.enabled") {
		dialer := gomail.NewDialer(
			viper.GetString("service.smtp.host"),
			viper.GetInt("service.smtp.port"),
			viper.GetString("service.smtp.email"),
			viper.GetString("service.smtp.pass"),
		)
		smtpClient = smtp.NewClient(dialer,
			viper.GetString("service.smtp.email"),
			viper.GetString("service.smtp.domain"),
		)
	}

	jwtTTL := viper.GetDuration("service.jwt.ttl")
	if jwtTTL <= 0 {
		jwtTTL = time.Hour
	}

	return &Config{
		Database:  database,
		Redis:     redisClient,
		SMTP:      smtpClient,
		HTTPAddr:  viper.GetString("service.http.addr"),
		JWTSecret: viper.GetString("service.jwt.secret"),
		JWTTTL:    jwtTTL,
	}
}
