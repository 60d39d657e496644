package http

import (
	"preinscription-chatbot/internal/chat"
	"preinscription-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates the HTTP handler of the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
