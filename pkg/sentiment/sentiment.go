package sentiment

import "context"

// Label is the coarse polarity bucket returned by the sentiment model.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// Mood is the result of probing one utterance.
type Mood struct {
	Label string  // POSITIVE | NEGATIVE | NEUTRAL
	Score float64 // model confidence in [0,1]
}

// Neutral is the fallback mood when the probe is unavailable.
func Neutral() Mood {
	return Mood{Label: LabelNeutral, Score: 0}
}

// Analyzer defines the contract for any sentiment backend.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Mood, error)
}

// PreambleFor maps a mood label to the empathic preamble the orchestrator
// derives for every non-greeting turn.
func PreambleFor(label string) string {
	switch label {
	case LabelNegative:
		return "I'm here to help. Let me know how I can assist you."
	case LabelPositive:
		return "I'm glad to hear that! How can I assist further?"
	default:
		return "Got it. How can I help you today?"
	}
}
