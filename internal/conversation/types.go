package conversation

import (
	"context"
	"time"
)

// Intent is a coarse topic label assigned to a user message.
type Intent string

const (
	IntentPreinscription Intent = "preinscription"
	IntentProgrammes     Intent = "programmes"
	IntentFrais          Intent = "frais"
	IntentAdmission      Intent = "admission"
	IntentCalendrier     Intent = "calendrier"
	IntentContact        Intent = "contact"
	IntentSalutation     Intent = "salutation"
	IntentAide           Intent = "aide"
	IntentGeneral        Intent = "general"
)

// Intents lists every label, specific ones first in classification priority order.
var Intents = []Intent{
	IntentPreinscription,
	IntentProgrammes,
	IntentFrais,
	IntentAdmission,
	IntentCalendrier,
	IntentContact,
	IntentSalutation,
	IntentAide,
	IntentGeneral,
}

// Role identifies the author of a history entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a session history.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Record is a snapshot of the in-memory state of one session.
// LastIntent is empty until the first message is classified.
type Record struct {
	SessionID  string
	History    []Message
	Attributes map[string]any
	LastIntent Intent
	CreatedAt  time.Time
}

// Summary is the read-only projection exposed to diagnostics.
type Summary struct {
	MessageCount int            `json:"message_count"`
	LastIntent   Intent         `json:"last_intent,omitempty"`
	Attributes   map[string]any `json:"user_attributes"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Reply is the outcome of one handled message.
type Reply struct {
	Text     string
	Intent   Intent
	Fallback bool
}

// Generator is the external generative text service.
// Implementations may fail for any reason; callers treat them as a black box.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
