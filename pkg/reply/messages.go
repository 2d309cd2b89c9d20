package reply

// User-visible sentinel strings. These are part of the client contract and
// must not be reworded.
const (
	NoInputMessage         = "No input received. Please type something."
	GreetingMessage        = "Hello! How can I assist you today? 😊"
	NoProductsMessage      = "Sorry, I couldn't find any products that match your query."
	NoLLMResponseMessage   = "No response from Gemini API."
	ProcessingErrorMessage = "An error occurred while processing your request."

	// NoInformationMessage is only reachable if the LLM adapter ever yields an
	// empty reply, which the sentinel translation prevents today.
	NoInformationMessage = "I'm sorry, I couldn't find any relevant information. Could you try rephrasing your query?"
)
