package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/campus-card-core/config"
	"github.com/jeffleon2/campus-card-core/internal/coordinator"
	"github.com/jeffleon2/campus-card-core/internal/fraud"
	"github.com/jeffleon2/campus-card-core/internal/handlers"
	"github.com/jeffleon2/campus-card-core/internal/idgen"
	"github.com/jeffleon2/campus-card-core/internal/locks"
	"github.com/jeffleon2/campus-card-core/internal/metrics"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/jeffleon2/campus-card-core/internal/publisher"
	"github.com/jeffleon2/campus-card-core/internal/repository/posgrest"
	"github.com/jeffleon2/campus-card-core/internal/service"
	"github.com/jeffleon2/campus-card-core/internal/subscriber"
	"github.com/sirupsen/logrus"
)

type App struct {
	config   *config.Config
	Router   *gin.Engine
	lockMgr  *locks.Manager
	consumer *subscriber.KafkaConsumer
	pub      *publisher.KafkaPublisher
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	location, err := time.LoadLocation(cfg.APP.Timezone)
	if err != nil {
		logrus.Warnf("Unknown timezone %q, falling back to UTC", cfg.APP.Timezone)
		location = time.UTC
	}

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Card{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	a.lockMgr = locks.NewManagerWith(cfg.Lock.DefaultTimeout, cfg.Lock.MaxWait, cfg.Lock.CheckInterval)
	generator := idgen.New(cfg.APP.StationID, location)
	coord := coordinator.NewWithLimits(cfg.APP.StationID, generator, a.lockMgr, cfg.Sync.MaxRecentTransactions, cfg.Sync.MaxOperationLog)
	engine := fraud.NewEngine(cfg.Fraud, location)

	cardRepo := posgrest.New[models.Card](db)
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	a.pub = publisher.NewKafkaPublisher(strings.Split(cfg.Kafka.Brokers, ",")[0], publishTopics, cfg.Kafka.GetRetryConfig())

	transactionService := service.NewTransactionService(coord, engine, cardRepo, a.pub)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	adminHandler := handlers.NewAdminHandler(engine, coord)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(transactionHandler, adminHandler)

	a.initSubscribers(transactionHandler)
}

func (a *App) Run(ctx context.Context) {
	go a.sweepExpiredLocks(ctx)

	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

// sweepExpiredLocks periodically evicts leases from crashed stations so
// they do not linger until the next acquire touches them.
func (a *App) sweepExpiredLocks(ctx context.Context) {
	ticker := time.NewTicker(a.config.Lock.DefaultTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.lockMgr.CleanupExpired()
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) initSubscribers(transactionHandler *handlers.TransactionHandler) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.ConsumerGroup

	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, groupID, a.pub, a.config.Kafka.GetRetryConfig())

	go a.consumer.Listen(context.Background(), func(topic string, value []byte) error {
		logrus.Infof("Received message topic=%s", topic)
		return transactionHandler.HandleEvents(context.Background(), topic, value)
	})
}

func (a *App) Shutdown() {
	if a.consumer != nil {
		for _, reader := range a.consumer.Readers {
			if err := reader.Close(); err != nil {
				logrus.Errorf("Error closing consumer: %v", err)
			}
		}
	}
	if a.pub != nil {
		if err := a.pub.Close(); err != nil {
			logrus.Errorf("Error closing publisher: %v", err)
		}
	}
}
