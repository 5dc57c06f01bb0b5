package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError  Event = "error"
	EventResult Event = "result"
	EventPong   Event = "pong"
)

// ResultEvent is pushed to admin subscribers when a quiz attempt completes.
type ResultEvent struct {
	Event         Event  `json:"event"`
	AttemptID     string `json:"attemptId"`
	Email         string `json:"email"`
	AttemptNumber int    `json:"attemptNumber"`
	Score         int    `json:"score"`
	Total         int    `json:"total"`
	Percentage    int    `json:"percentage"`
	Passed        bool   `json:"passed"`
	CompletedAt   string `json:"completedAt"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
