package dto

// PublishConversationTurnMessage is the payload carried on the conversation
// event bus between the chat service and the log consumer.
type PublishConversationTurnMessage struct {
	SessionId      string  `json:"session_id"`
	Utterance      string  `json:"utterance"`
	Reply          string  `json:"reply"`
	Source         string  `json:"source"`
	MoodLabel      string  `json:"mood_label,omitempty"`
	MoodScore      float64 `json:"mood_score,omitempty"`
	ListingIntent  bool    `json:"listing_intent"`
	ResolvedFilter string  `json:"resolved_filter,omitempty"`
}
