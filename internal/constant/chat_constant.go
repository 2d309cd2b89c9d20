package constant

// Answering branches of the dialog pipeline, recorded on conversation logs.
const (
	AnswerSourceGreeting = "greeting"
	AnswerSourceCatalog  = "catalog"
	AnswerSourceFaq      = "faq"
	AnswerSourceLLM      = "llm"
	AnswerSourceError    = "error"
)

// ConversationTurnEvent is the event type emitted after every handled turn.
const ConversationTurnEvent = "CONVERSATION_TURN"

// DefaultConversationLogTopic is the in-process bus topic the consumer
// service subscribes to.
const DefaultConversationLogTopic = "CONVERSATION_TURNS"
