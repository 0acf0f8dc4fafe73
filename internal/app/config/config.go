package config

import (
	"handicare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "handicare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Seoul"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 15),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUESTS_PER_SECOND", 100),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "defaultSecret"),
		},
		Schedule: Schedule{
			DayStartHour:   utils.GetEnvInt("SCHEDULE_DAY_START_HOUR", 9),
			DayStartMinute: utils.GetEnvInt("SCHEDULE_DAY_START_MINUTE", 0),
			DayEndHour:     utils.GetEnvInt("SCHEDULE_DAY_END_HOUR", 17),
			DayEndMinute:   utils.GetEnvInt("SCHEDULE_DAY_END_MINUTE", 30),
			SlotMinutes:    utils.GetEnvInt("SCHEDULE_SLOT_MINUTES", 30),
			LeadTimeDays:   utils.GetEnvInt("SCHEDULE_LEAD_TIME_DAYS", 3),
			StoreTTLDays:   utils.GetEnvInt("SCHEDULE_STORE_TTL_DAYS", 7),
		},
		Matching: Matching{
			CronSpec:       utils.GetEnvString("MATCHING_CRON_SPEC", "0 0 * * *"),
			MatchQueue:     utils.GetEnvString("MATCHING_MATCH_QUEUE", "meeting.matched"),
			LockTTLMinutes: utils.GetEnvInt("MATCHING_LOCK_TTL_MINUTES", 2),
		},
	}
}
