package middleware

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// contentSecurityPolicy allows the chat page and its CDN assets.
const contentSecurityPolicy = "script-src 'self' 'unsafe-inline' https://cdnjs.cloudflare.com https://fonts.googleapis.com; " +
	"style-src 'self' 'unsafe-inline' https://cdnjs.cloudflare.com https://fonts.googleapis.com; " +
	"font-src 'self' https://cdnjs.cloudflare.com https://fonts.gstatic.com;"

// Rate limiter defaults
const (
	defaultRequestsPerMin = 60
	defaultMaxClients     = 10000
)
