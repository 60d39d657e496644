package usecase

import (
	"time"

	"preinscription-chatbot/internal/chat"
	"preinscription-chatbot/internal/chat/repository"
	"preinscription-chatbot/internal/conversation"
	pkgLog "preinscription-chatbot/pkg/log"
)

// DefaultMaxMessageLength caps user messages, counted in runes.
const DefaultMaxMessageLength = 2000

// maxSessionIDLength bounds caller supplied session and user ids.
const maxSessionIDLength = 128

// Session listing page size
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

var _ chat.UseCase = (*implUseCase)(nil)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo             repository.Repository
	engine           *conversation.Engine
	l                pkgLog.Logger
	maxMessageLength int
	now              func() time.Time
	newID            func() string
}

// New creates a new chat UseCase implementation.
func New(repo repository.Repository, engine *conversation.Engine, maxMessageLength int, l pkgLog.Logger) *implUseCase {
	if maxMessageLength <= 0 {
		maxMessageLength = DefaultMaxMessageLength
	}
	return &implUseCase{
		repo:             repo,
		engine:           engine,
		l:                l,
		maxMessageLength: maxMessageLength,
		now:              time.Now,
		newID:            newSessionID,
	}
}
