package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"beauty-assistant-be/internal/constant"
	"beauty-assistant-be/internal/dto"
	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/repository/contract"
	"beauty-assistant-be/internal/repository/memory"
	"beauty-assistant-be/internal/repository/specification"
	"beauty-assistant-be/internal/repository/unitofwork"
	"beauty-assistant-be/pkg/llm"
	"beauty-assistant-be/pkg/nlp/filter"
	"beauty-assistant-be/pkg/nlp/tokenizer"
	"beauty-assistant-be/pkg/reply"
	"beauty-assistant-be/pkg/sentiment"

	"github.com/stretchr/testify/assert"
)

// Fakes

type fakeAnalyzer struct {
	mood sentiment.Mood
	err  error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, text string) (sentiment.Mood, error) {
	if f.err != nil {
		return sentiment.Mood{}, f.err
	}
	return f.mood, nil
}

type fakeLLM struct {
	text   string
	err    error
	called bool
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.called = true
	return f.text, f.err
}

type fakeProductRepo struct {
	products []*entity.Product
	err      error
	lastRec  filter.Record
	called   bool
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }

func (f *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	return f.products, f.err
}

func (f *fakeProductRepo) FindByFilter(ctx context.Context, rec filter.Record) ([]*entity.Product, error) {
	f.called = true
	f.lastRec = rec
	return f.products, f.err
}

func (f *fakeProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeFaqRepo struct {
	answer string
	err    error
	called bool
}

func (f *fakeFaqRepo) Create(ctx context.Context, entry *entity.FaqEntry) error { return nil }

func (f *fakeFaqRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error) {
	return nil, nil
}

func (f *fakeFaqRepo) LookupAnswer(ctx context.Context, utterance string) (string, error) {
	f.called = true
	return f.answer, f.err
}

func (f *fakeFaqRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeLogRepo struct {
	logs []*entity.ConversationLog
}

func (f *fakeLogRepo) Create(ctx context.Context, log *entity.ConversationLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeLogRepo) FindAllBySessionId(ctx context.Context, sessionId string) ([]*entity.ConversationLog, error) {
	return f.logs, nil
}

func (f *fakeLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.logs)), nil
}

type fakeUnitOfWork struct {
	products contract.ProductRepository
	faq      contract.FaqRepository
	logs     contract.ConversationLogRepository
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) ProductRepository() contract.ProductRepository { return f.products }
func (f *fakeUnitOfWork) FaqRepository() contract.FaqRepository         { return f.faq }
func (f *fakeUnitOfWork) ConversationLogRepository() contract.ConversationLogRepository {
	return f.logs
}

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type capturingPublisher struct {
	payloads [][]byte
}

func (c *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	c.payloads = append(c.payloads, payload)
	return nil
}

func (c *capturingPublisher) lastTurn(t *testing.T) dto.PublishConversationTurnMessage {
	t.Helper()
	if len(c.payloads) == 0 {
		t.Fatal("no conversation turn was published")
	}
	var msg dto.PublishConversationTurnMessage
	if err := json.Unmarshal(c.payloads[len(c.payloads)-1], &msg); err != nil {
		t.Fatalf("published payload is not valid JSON: %v", err)
	}
	return msg
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type harness struct {
	service   IChatService
	products  *fakeProductRepo
	faq       *fakeFaqRepo
	llm       *fakeLLM
	publisher *capturingPublisher
}

func newHarness(analyzer sentiment.Analyzer, llmProvider *fakeLLM, empathy bool) *harness {
	products := &fakeProductRepo{}
	faq := &fakeFaqRepo{}
	publisher := &capturingPublisher{}

	uow := &fakeUnitOfWork{products: products, faq: faq, logs: &fakeLogRepo{}}
	svc := NewChatService(
		&fakeFactory{uow: uow},
		memory.NewSessionRepository(),
		filter.NewExtractor(tokenizer.NewSimpleTokenizer()),
		analyzer,
		llmProvider,
		publisher,
		nil,
		noopLogger{},
		empathy,
	)

	return &harness{
		service:   svc,
		products:  products,
		faq:       faq,
		llm:       llmProvider,
		publisher: publisher,
	}
}

func neutralAnalyzer() *fakeAnalyzer {
	return &fakeAnalyzer{mood: sentiment.Neutral()}
}

// Tests

func TestHandleUtterance_EmptyInput(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{}, false)

	got := h.service.HandleUtterance(context.Background(), "s1", "   ")

	assert.Equal(t, reply.NoInputMessage, got)
	assert.False(t, h.llm.called)
}

func TestHandleUtterance_GreetingShortCircuitsEverything(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("must not be called")}
	h := newHarness(analyzer, &fakeLLM{err: errors.New("must not be called")}, false)

	got := h.service.HandleUtterance(context.Background(), "s1", "Hello there")

	assert.Equal(t, reply.GreetingMessage, got)
	assert.False(t, h.llm.called)
	assert.False(t, h.products.called)
	assert.False(t, h.faq.called)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, constant.AnswerSourceGreeting, turn.Source)
}

func TestHandleUtterance_CatalogListing(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{}, false)
	h.products.products = []*entity.Product{
		{Name: "Silk Serum", Brand: "Glow", Price: "29.99", Description: "Light serum"},
	}

	got := h.service.HandleUtterance(context.Background(), "s1", "show me serum products")

	assert.Contains(t, got, "Here are the top 1 serum:")
	assert.Contains(t, got, "**Silk Serum** by Glow")
	assert.Equal(t, "serum", h.products.lastRec.Category)
	assert.False(t, h.faq.called, "catalog answer must not fall through to FAQ")
	assert.False(t, h.llm.called)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, constant.AnswerSourceCatalog, turn.Source)
	assert.True(t, turn.ListingIntent)
	assert.Contains(t, turn.ResolvedFilter, "serum")
}

func TestHandleUtterance_EmptyCatalogFallsThroughToFaq(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{err: errors.New("must not be called")}, false)
	h.faq.answer = "All lipsticks are restocked every Monday."

	got := h.service.HandleUtterance(context.Background(), "s1", "lipstick products please")

	assert.Equal(t, "All lipsticks are restocked every Monday.", got)
	assert.True(t, h.products.called)
	assert.True(t, h.faq.called)
	assert.False(t, h.llm.called)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, constant.AnswerSourceFaq, turn.Source)
	assert.True(t, turn.ListingIntent)
}

func TestHandleUtterance_EmptyCatalogFallsThroughToLLM(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{text: "Try our new spring collection."}, false)

	got := h.service.HandleUtterance(context.Background(), "s1", "lipstick products for dry skin")

	assert.Equal(t, "Try our new spring collection.", got)
	assert.True(t, h.faq.called)
	assert.True(t, h.llm.called)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, constant.AnswerSourceLLM, turn.Source)
}

func TestHandleUtterance_CatalogFailureTreatedAsEmpty(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{}, false)
	h.products.err = errors.New("connection refused")
	h.faq.answer = "Soap orders ship within two days."

	got := h.service.HandleUtterance(context.Background(), "s1", "soap products")

	assert.Equal(t, "Soap orders ship within two days.", got)
	assert.True(t, h.faq.called)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, constant.AnswerSourceFaq, turn.Source)
}

func TestHandleUtterance_FaqFailureContinuesToLLM(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{text: "Of course, happy to explain."}, false)
	h.faq.err = errors.New("connection refused")

	got := h.service.HandleUtterance(context.Background(), "s1", "can I return an order")

	assert.Equal(t, "Of course, happy to explain.", got)
	assert.True(t, h.llm.called)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, constant.AnswerSourceLLM, turn.Source)
}

func TestHandleUtterance_FaqAnswerWins(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{err: errors.New("must not be called")}, false)
	h.faq.answer = "Returns are accepted up to 30 days after purchase."

	got := h.service.HandleUtterance(context.Background(), "s1", "can I return an order")

	assert.Equal(t, "Returns are accepted up to 30 days after purchase.", got)
	assert.False(t, h.llm.called)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, constant.AnswerSourceFaq, turn.Source)
}

func TestHandleUtterance_LLMFallback(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{text: "Retinol is best applied at night."}, false)

	got := h.service.HandleUtterance(context.Background(), "s1", "when should I apply retinol")

	assert.Equal(t, "Retinol is best applied at night.", got)
	assert.True(t, h.llm.called)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, constant.AnswerSourceLLM, turn.Source)
}

func TestHandleUtterance_LLMNoCandidates(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{err: llm.ErrNoCandidates}, false)

	got := h.service.HandleUtterance(context.Background(), "s1", "tell me a secret")

	assert.Equal(t, reply.NoLLMResponseMessage, got)
}

func TestHandleUtterance_LLMTransportError(t *testing.T) {
	h := newHarness(neutralAnalyzer(), &fakeLLM{err: errors.New("dial tcp: timeout")}, false)

	got := h.service.HandleUtterance(context.Background(), "s1", "tell me a secret")

	assert.Equal(t, reply.ProcessingErrorMessage, got)
}

func TestHandleUtterance_SentimentFailureDegradesToNeutral(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("model loading")}
	h := newHarness(analyzer, &fakeLLM{text: "Sure, here is an answer."}, false)

	got := h.service.HandleUtterance(context.Background(), "s1", "why is my order late")

	assert.Equal(t, "Sure, here is an answer.", got)

	turn := h.publisher.lastTurn(t)
	assert.Equal(t, sentiment.LabelNeutral, turn.MoodLabel)
}

func TestHandleUtterance_EmpathyPreambleFlag(t *testing.T) {
	analyzer := &fakeAnalyzer{mood: sentiment.Mood{Label: sentiment.LabelNegative, Score: 0.98}}

	t.Run("disabled by default", func(t *testing.T) {
		h := newHarness(analyzer, &fakeLLM{text: "Let me check that."}, false)
		got := h.service.HandleUtterance(context.Background(), "s1", "my package never arrived")
		assert.Equal(t, "Let me check that.", got)
	})

	t.Run("enabled prepends preamble", func(t *testing.T) {
		h := newHarness(analyzer, &fakeLLM{text: "Let me check that."}, true)
		got := h.service.HandleUtterance(context.Background(), "s1", "my package never arrived")
		assert.True(t, strings.HasPrefix(got, sentiment.PreambleFor(sentiment.LabelNegative)))
		assert.Contains(t, got, "Let me check that.")
	})
}

func TestHandleUtterance_ReplyIsNeverEmpty(t *testing.T) {
	cases := []struct {
		name string
		llm  *fakeLLM
	}{
		{"llm empty text", &fakeLLM{text: ""}},
		{"llm whitespace text", &fakeLLM{text: "   "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(neutralAnalyzer(), tc.llm, false)
			got := h.service.HandleUtterance(context.Background(), "s1", "an unusual cosmetics question")
			assert.Equal(t, reply.NoInformationMessage, got)
		})
	}
}
