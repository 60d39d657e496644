package conversation

import "time"

// Limits
const (
	DefaultHistoryLimit    = 10 // entries kept per session
	DefaultPromptHistory   = 6  // last 3 exchanges rendered into the prompt
	DefaultMaxSessions     = 10000
	DefaultGenerateTimeout = 30 * time.Second
)

// Log prefixes
const (
	LogPrefixHandleMessage = "internal.conversation.HandleMessage"
	LogPrefixStoreEvict    = "internal.conversation.Store.evict"
)

// Prompt annotations
const (
	annotationUserName     = "[User is named %s]"
	annotationIntent       = "[Detected intent: %s]"
	annotationHistoryOpen  = "[Recent history:"
	annotationHistoryClose = "]"
	linePrefixUser         = "User: "
	linePrefixAssistant    = "Assistant: "
)
