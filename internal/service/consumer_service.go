// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"beauty-assistant-be/internal/dto"
	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains conversation turn events off the in-process bus and
// persists them as conversation logs. Persistence is asynchronous so a slow
// database never delays the chat response itself.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishConversationTurnMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal conversation turn: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Persisting conversation turn for session: %s (source: %s)", payload.SessionId, payload.Source)

	metadata := map[string]interface{}{
		"mood_label":     payload.MoodLabel,
		"mood_score":     payload.MoodScore,
		"listing_intent": payload.ListingIntent,
	}
	if payload.ResolvedFilter != "" {
		metadata["resolved_filter"] = payload.ResolvedFilter
	}

	turn := &entity.ConversationLog{
		Id:        uuid.New(),
		SessionId: payload.SessionId,
		Utterance: payload.Utterance,
		Reply:     payload.Reply,
		Source:    payload.Source,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.ConversationLogRepository().Create(ctx, turn); err != nil {
		log.Printf("[ERROR] Failed to create conversation log: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	msg.Ack()
}
