package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"beauty-assistant-be/internal/constant"
	"beauty-assistant-be/internal/dto"
	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/pkg/logger"
	"beauty-assistant-be/internal/repository/contract"
	"beauty-assistant-be/internal/repository/unitofwork"
	"beauty-assistant-be/pkg/events"
	"beauty-assistant-be/pkg/llm"
	pktNats "beauty-assistant-be/pkg/nats"
	"beauty-assistant-be/pkg/nlp/filter"
	"beauty-assistant-be/pkg/nlp/intent"
	"beauty-assistant-be/pkg/reply"
	"beauty-assistant-be/pkg/sentiment"
)

type IChatService interface {
	// HandleUtterance runs one dialog turn and always returns a non-empty,
	// user-presentable reply. Failures surface as sentinel strings, never as
	// errors, because the HTTP contract is a 200 with a reply body.
	HandleUtterance(ctx context.Context, sessionId, utterance string) string
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessionRepo      contract.SessionRepository
	extractor        *filter.Extractor
	analyzer         sentiment.Analyzer
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
	empathyEnabled   bool
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo contract.SessionRepository,
	extractor *filter.Extractor,
	analyzer sentiment.Analyzer,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	empathyEnabled bool,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		sessionRepo:      sessionRepo,
		extractor:        extractor,
		analyzer:         analyzer,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
		empathyEnabled:   empathyEnabled,
	}
}

// HandleUtterance dispatches the turn through a fixed cascade: greeting
// short-circuit, then catalog (only under listing intent), then FAQ lookup,
// then the LLM fallback. The first branch that produces an answer wins; a
// listing turn with no catalog rows, or a failed store lookup, falls through
// to the next branch.
func (c *chatService) HandleUtterance(ctx context.Context, sessionId, utterance string) (answer string) {
	source := constant.AnswerSourceError
	mood := sentiment.Neutral()
	listing := false
	resolvedFilter := ""

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("ChatService", "Recovered from panic in dialog turn", map[string]interface{}{
				"session_id": sessionId,
				"panic":      r,
			})
			answer = reply.ProcessingErrorMessage
			source = constant.AnswerSourceError
		}
		c.publishTurn(sessionId, utterance, answer, source, mood, listing, resolvedFilter)
	}()

	if strings.TrimSpace(utterance) == "" {
		return reply.NoInputMessage
	}

	// Sessions are created on first contact and never evicted. The context
	// map is reserved for future multi-turn slots.
	c.sessionRepo.Ensure(sessionId)

	// Greetings bypass every adapter, including the sentiment probe.
	if intent.IsGreeting(utterance) {
		source = constant.AnswerSourceGreeting
		return reply.GreetingMessage
	}

	mood = c.probeMood(ctx, utterance)

	uow := c.uowFactory.NewUnitOfWork(ctx)

	if intent.IsProductListingRequest(utterance) {
		listing = true
		rec := c.extractor.Extract(utterance)
		if encoded, err := json.Marshal(rec); err == nil {
			resolvedFilter = string(encoded)
		}

		products, err := uow.ProductRepository().FindByFilter(ctx, rec)
		if err != nil {
			// Store failures degrade to an empty result; the cascade keeps
			// moving instead of surfacing the error.
			c.logger.Error("ChatService", "Catalog query failed, treating as empty result", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
			products = nil
		}
		if len(products) > 0 {
			source = constant.AnswerSourceCatalog
			return c.withPreamble(mood, formatCatalogReply(products, rec.QueryType()))
		}
		// An empty catalog result falls through to FAQ, then to the LLM.
	}

	faqAnswer, err := uow.FaqRepository().LookupAnswer(ctx, utterance)
	if err != nil {
		c.logger.Error("ChatService", "FAQ lookup failed, continuing to LLM fallback", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		faqAnswer = ""
	}
	if faqAnswer != "" {
		source = constant.AnswerSourceFaq
		return c.withPreamble(mood, faqAnswer)
	}

	text, err := c.llmProvider.Generate(ctx, utterance)
	if err != nil {
		if errors.Is(err, llm.ErrNoCandidates) {
			return reply.NoLLMResponseMessage
		}
		c.logger.Error("ChatService", "LLM generation failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return reply.ProcessingErrorMessage
	}
	if strings.TrimSpace(text) == "" {
		source = constant.AnswerSourceLLM
		return reply.NoInformationMessage
	}

	source = constant.AnswerSourceLLM
	return c.withPreamble(mood, text)
}

// probeMood degrades to NEUTRAL when the sentiment backend is down so the
// turn keeps flowing.
func (c *chatService) probeMood(ctx context.Context, utterance string) sentiment.Mood {
	mood, err := c.analyzer.Analyze(ctx, utterance)
	if err != nil {
		c.logger.Warn("ChatService", "Sentiment probe failed, defaulting to neutral", map[string]interface{}{
			"error": err.Error(),
		})
		return sentiment.Neutral()
	}
	return mood
}

// withPreamble prepends the empathic preamble when the feature flag is on.
// The preamble is derived for every non-greeting turn regardless, so the flag
// flips presentation only.
func (c *chatService) withPreamble(mood sentiment.Mood, answer string) string {
	if !c.empathyEnabled {
		return answer
	}
	return sentiment.PreambleFor(mood.Label) + "\n\n" + answer
}

// formatCatalogReply adapts catalog rows into the formatter's view. The
// cascade only calls it with a non-empty result; the formatter still renders
// the no-products sentinel for an empty slice by its own contract.
func formatCatalogReply(products []*entity.Product, queryType string) string {
	rows := make([]reply.Product, 0, len(products))
	for _, p := range products {
		rows = append(rows, reply.Product{
			Name:        p.Name,
			Brand:       p.Brand,
			Price:       p.Price,
			Description: p.Description,
			SkinType:    p.SkinType,
			HairType:    p.HairType,
			Ingredients: p.Ingredients,
		})
	}
	return reply.FormatProducts(rows, queryType)
}

func (c *chatService) publishTurn(sessionId, utterance, answer, source string, mood sentiment.Mood, listing bool, resolvedFilter string) {
	payload := dto.PublishConversationTurnMessage{
		SessionId:      sessionId,
		Utterance:      utterance,
		Reply:          answer,
		Source:         source,
		MoodLabel:      mood.Label,
		MoodScore:      mood.Score,
		ListingIntent:  listing,
		ResolvedFilter: resolvedFilter,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		c.logger.Warn("ChatService", "Failed to encode conversation turn", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	// Fire-and-forget: logging must never fail the reply.
	if err := c.publisherService.Publish(context.Background(), encoded); err != nil {
		c.logger.Warn("ChatService", "Failed to publish conversation turn", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if c.eventPublisher != nil {
		evt := events.NewConversationTurn(sessionId, utterance, answer, source)
		if err := c.eventPublisher.Publish(context.Background(), evt); err != nil {
			c.logger.Warn("ChatService", "Failed to mirror turn to NATS", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
