package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgLog "preinscription-chatbot/pkg/log"
)

var errBlankOutput = errors.New("conversation: generator returned blank output")

// EngineConfig tunes the Engine.
type EngineConfig struct {
	SystemPrompt    string
	PromptHistory   int
	GenerateTimeout time.Duration
}

// Engine answers one user message at a time on top of a Store and a Generator.
type Engine struct {
	store     *Store
	generator Generator
	l         pkgLog.Logger
	cfg       EngineConfig
}

// NewEngine wires an Engine. Zero config values take the package defaults.
func NewEngine(store *Store, generator Generator, cfg EngineConfig, l pkgLog.Logger) *Engine {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = SystemPrompt
	}
	if cfg.PromptHistory <= 0 {
		cfg.PromptHistory = DefaultPromptHistory
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = DefaultGenerateTimeout
	}
	if l == nil {
		l = pkgLog.NewNop()
	}
	return &Engine{
		store:     store,
		generator: generator,
		l:         l,
		cfg:       cfg,
	}
}

// Store exposes the context store the engine writes to.
func (e *Engine) Store() *Store {
	return e.store
}

// Prompt returns the prompt HandleMessage would send for message without
// touching the session state.
func (e *Engine) Prompt(sessionID, message, displayName string) (string, Intent) {
	intent := Classify(message)
	rec, _ := e.store.Peek(sessionID)
	return buildPrompt(e.cfg.SystemPrompt, message, rec.History, intent, displayName, e.cfg.PromptHistory), intent
}

// HandleMessage classifies message, asks the generator for an answer using the
// session context and records the exchange. It always returns a non-empty reply:
// when generation fails or yields nothing the canned answer for the intent is used.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, message, displayName string) Reply {
	intent := Classify(message)

	rec := e.store.GetOrCreate(sessionID)
	e.store.SetIntent(sessionID, intent)

	prompt := buildPrompt(e.cfg.SystemPrompt, message, rec.History, intent, displayName, e.cfg.PromptHistory)

	reply := Reply{Intent: intent}
	text, err := e.generate(ctx, prompt)
	if err != nil {
		e.l.Warnf(ctx, "%s: session %s intent %s: falling back: %v", LogPrefixHandleMessage, sessionID, intent, err)
		reply.Text = Fallback(intent)
		reply.Fallback = true
	} else {
		reply.Text = text
	}

	e.store.AppendExchange(sessionID, message, reply.Text)
	return reply
}

// generate never panics: a panicking generator is reported as an error.
func (e *Engine) generate(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("conversation: generator panicked: %v", r)
		}
	}()

	if e.generator == nil {
		return "", errors.New("conversation: no generator configured")
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.GenerateTimeout)
	defer cancel()

	text, err = e.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errBlankOutput
	}
	return text, nil
}
