package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat is RFC 3339 with milliseconds, always in UTC.
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)
