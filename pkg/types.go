package pkg

import "time"

// Role identifies the author of a conversation message as seen by the
// completion API.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation transcript. The transcript is
// append-only: handlers add to it, nothing reorders or rewrites it.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Doctor is one row of the provider registry. Records are produced fresh
// from the CSV source on every load and never mutated.
type Doctor struct {
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Hospital       string  `json:"hospital"`
}

// Match pairs a doctor with the distance from the caller. DistanceKm is
// nil when the caller did not supply coordinates.
type Match struct {
	Doctor     Doctor   `json:"doctor"`
	DistanceKm *float64 `json:"distance_km"`
}

// Sender identifies who authored a stored chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Stored message kinds. Doctor suggestions are flagged so a client can
// render them differently from plain text.
const (
	KindText             = "text"
	KindDoctorSuggestion = "doctor-suggestion"
)

// StoredMessage is a chat message as written to persistence.
type StoredMessage struct {
	Sender Sender `json:"sender"`
	Kind   string `json:"type"`
	Text   string `json:"text"`
}

// SessionInfo is one entry in the session listing.
type SessionInfo struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatRequest is the body of POST /api/chat. Latitude and longitude are
// decoded loosely: numbers are used as-is, anything else present but
// unparseable falls back to 0.
type ChatRequest struct {
	Message      string    `json:"message"`
	Conversation []Message `json:"conversation"`
	Latitude     any       `json:"latitude,omitempty"`
	Longitude    any       `json:"longitude,omitempty"`
	SessionID    string    `json:"sessionId"`
}

// ChatResponse is the success body of POST /api/chat.
type ChatResponse struct {
	Response     string    `json:"response"`
	Conversation []Message `json:"conversation"`
}
