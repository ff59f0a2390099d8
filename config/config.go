package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Lock
	Sync
	Fraud
}

type APP struct {
	PORT      string `env:"APP_PORT" envDefault:"8090"`
	StationID string `env:"APP_STATION_ID" envDefault:"MAIN"`
	Timezone  string `env:"APP_TIMEZONE" envDefault:"Asia/Manila"`
}

type DB struct {
	HOST     string `env:"DB_HOST" envDefault:"localhost"`
	USER     string `env:"DB_USER" envDefault:"postgres"`
	PASSWORD string `env:"DB_PASSWORD" envDefault:"postgres"`
	NAME     string `env:"DB_NAME" envDefault:"campus_cards"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Brokers          string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string        `env:"KAFKA_GROUP_ID" envDefault:"card-core"`
	SubscriberTopics string        `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"stations.transactions.requested"`
	PublishTopics    string        `env:"KAFKA_PUBLISH_TOPICS" envDefault:"cards.transactions.completed,fraud.alerts.raised,cards.suspended,cards.dlq"`
	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Lock struct {
	DefaultTimeout time.Duration `env:"LOCK_DEFAULT_TIMEOUT" envDefault:"30s"`
	MaxWait        time.Duration `env:"LOCK_MAX_WAIT" envDefault:"10s"`
	CheckInterval  time.Duration `env:"LOCK_CHECK_INTERVAL" envDefault:"100ms"`
}

type Sync struct {
	MaxRecentTransactions int `env:"SYNC_MAX_RECENT_TRANSACTIONS" envDefault:"1000"`
	MaxOperationLog       int `env:"SYNC_MAX_OPERATION_LOG" envDefault:"10000"`
}

type Fraud struct {
	VelocityLimit            int           `env:"FRAUD_VELOCITY_LIMIT" envDefault:"5"`
	VelocityWindow           time.Duration `env:"FRAUD_VELOCITY_WINDOW" envDefault:"5m"`
	UnusualAmountAbsolute    float64       `env:"FRAUD_UNUSUAL_AMOUNT_ABSOLUTE" envDefault:"200"`
	UnusualAmountMultiplier  float64       `env:"FRAUD_UNUSUAL_AMOUNT_MULTIPLIER" envDefault:"3"`
	UnusualTimeStartHour     int           `env:"FRAUD_UNUSUAL_TIME_START_HOUR" envDefault:"22"`
	UnusualTimeEndHour       int           `env:"FRAUD_UNUSUAL_TIME_END_HOUR" envDefault:"6"`
	RapidSpendingPercent     float64       `env:"FRAUD_RAPID_SPENDING_PERCENT" envDefault:"50"`
	RapidSpendingWindow      time.Duration `env:"FRAUD_RAPID_SPENDING_WINDOW" envDefault:"1h"`
	DormantDays              int           `env:"FRAUD_DORMANT_DAYS" envDefault:"30"`
	LocationMismatchWindow   time.Duration `env:"FRAUD_LOCATION_MISMATCH_WINDOW" envDefault:"5m"`
	AutoSuspendVelocity      int           `env:"FRAUD_AUTO_SUSPEND_VELOCITY" envDefault:"10"`
	AutoSuspendRapidSpending float64       `env:"FRAUD_AUTO_SUSPEND_RAPID_SPENDING" envDefault:"80"`
	MaxAlerts                int           `env:"FRAUD_MAX_ALERTS" envDefault:"1000"`
	HistoryWindow            time.Duration `env:"FRAUD_HISTORY_WINDOW" envDefault:"24h"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
