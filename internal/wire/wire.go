package wire

import (
	"Agora/internal/api"
	"Agora/internal/api/config"
	"Agora/internal/api/handler"
	"Agora/internal/job"
	"Agora/internal/pkg/cron"
	"Agora/internal/pkg/event"
	"Agora/internal/pkg/kafka"
	"Agora/internal/pkg/nats"
	"Agora/internal/pkg/redis"
	"Agora/internal/pkg/security"
	"Agora/internal/repository"
	"Agora/internal/service"
	"fmt"
	log "log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	EventsKafka = "kafka"
	EventsNATS  = "nats"
	EventsNone  = "none"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	Publisher    event.Publisher
	KafkaManager *kafka.ConsumerManager // 仅 events.driver=kafka 时存在
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, store *redis.Store, cfg *config.Config) (*ApplicationContainer, error) {
	publisher, err := NewPublisher(cfg)
	if err != nil {
		return nil, err
	}

	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	reportedRepo := repository.NewReportedPostRepository(db)
	statsRepo := repository.NewPostStatsRepository(db)

	postService := service.NewPostService(postRepo, commentRepo, userRepo, publisher)
	commentService := service.NewCommentService(commentRepo, postRepo)
	reportService := service.NewReportService(reportRepo, postRepo, store, publisher)
	reportedService := service.NewReportedPostService(reportedRepo, store)
	moderationService := service.NewModerationService(reportedRepo, store, publisher)
	statsService := service.NewPostStatsService(statsRepo)
	suspensionService := service.NewSuspensionService(userRepo, store)

	handlers := &api.HandlersGroup{
		PostHandler:       handler.NewPostHandler(postService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		ReportHandler:     handler.NewReportHandler(reportService, reportedService),
		ModerationHandler: handler.NewModerationHandler(moderationService),
		StatsHandler:      handler.NewStatsHandler(statsService),
		Signer:            security.NewSigner(cfg.JWT),
		TokenStore:        store,
		Suspensions:       suspensionService,
		LogIndex:          cfg.Logstash.Index,
	}

	router := api.SetupRouter(handlers)

	var kafkaMgr *kafka.ConsumerManager
	if cfg.Events.Driver == EventsKafka {
		kafkaMgr, err = kafka.NewConsumerManager(cfg.Kafka, store)
		if err != nil {
			_ = publisher.Close()
			return nil, err
		}
	}

	cronMgr := cron.NewCronManager(cfg.Cron.ReportMetrics, job.NewReportMetricsJob(reportedService))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		Publisher:    publisher,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}

// NewPublisher 按 events.driver 选择事件通道
func NewPublisher(cfg *config.Config) (event.Publisher, error) {
	switch cfg.Events.Driver {
	case EventsKafka:
		log.Info("Event publisher: kafka", "topic", cfg.Kafka.ModerationTopic)
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		return producer, nil
	case EventsNATS:
		log.Info("Event publisher: nats", "url", cfg.NATS.URL)
		publisher, err := nats.NewPublisher(cfg.NATS)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	case "", EventsNone:
		return event.NopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unsupported events driver: %s", cfg.Events.Driver)
	}
}
