package bootstrap

import (
	"context"
	"log"

	"beauty-assistant-be/internal/config"
	"beauty-assistant-be/internal/controller"
	"beauty-assistant-be/internal/pkg/logger"
	"beauty-assistant-be/internal/repository/contract"
	"beauty-assistant-be/internal/repository/memory"
	redisrepo "beauty-assistant-be/internal/repository/redis"
	"beauty-assistant-be/internal/repository/unitofwork"
	"beauty-assistant-be/internal/service"
	"beauty-assistant-be/pkg/llm/factory"
	pktNats "beauty-assistant-be/pkg/nats"
	"beauty-assistant-be/pkg/nlp/filter"
	"beauty-assistant-be/pkg/nlp/tokenizer"
	"beauty-assistant-be/pkg/sentiment/huggingface"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Session Store
	var sessionRepo contract.SessionRepository
	if cfg.Chat.SessionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisrepo.NewSessionRepository(rdb)
		log.Println("[INFO] Using Session Store: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository()
		log.Println("[INFO] Using Session Store: MEMORY")
	}

	// 4. AI Providers
	analyzer := huggingface.NewHuggingFaceProvider(cfg.Keys.HuggingFace, cfg.Ai.SentimentModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.GoogleGemini,
		cfg.Ai.LLMModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Optional NATS mirror for conversation events
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Chat.ConversationLogTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Chat.ConversationLogTopic,
		uowFactory,
	)

	extractor := filter.NewExtractor(tokenizer.NewSimpleTokenizer())

	chatService := service.NewChatService(
		uowFactory,
		sessionRepo,
		extractor,
		analyzer,
		llmProvider,
		publisherService,
		natsPub,
		sysLogger,
		cfg.Chat.EmpathyPreamble,
	)

	// 7. Controllers
	return &Container{
		ChatController:  controller.NewChatController(chatService),
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
