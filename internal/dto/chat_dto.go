package dto

// ChatRequest is the body of POST /chat. UserInput is validated by the
// controller itself because an empty utterance must still produce a 200 with
// the input sentinel, not a validation error.
type ChatRequest struct {
	UserInput string `json:"userInput" validate:"max=4096"`
	SessionId string `json:"sessionId" validate:"max=128"`
}

// ChatReply is the single-field reply contract. Every response, including
// failures, is a 200 carrying exactly this shape.
type ChatReply struct {
	Reply string `json:"reply"`
}
