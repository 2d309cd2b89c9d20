package entity

// SessionContext is the per-session dialog state. Context is a free-form map
// because future turns may stash arbitrary slots; today the orchestrator only
// creates it.
type SessionContext struct {
	Context map[string]interface{} `json:"context"`
}

func NewSessionContext() *SessionContext {
	return &SessionContext{Context: make(map[string]interface{})}
}
