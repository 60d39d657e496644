package middleware

import (
	"time"

	"preinscription-chatbot/pkg/log"
)

// Config tunes the HTTP middlewares.
type Config struct {
	RequestsPerMin int
	Burst          int
	MaxClients     int
	ClientTTL      time.Duration
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(cfg),
	}
}
