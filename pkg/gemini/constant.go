package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.0-flash-exp"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Generation defaults tuned for short, friendly chat answers.
const (
	DefaultTemperature     = 0.7
	DefaultTopP            = 0.9
	DefaultTopK            = 40
	DefaultMaxOutputTokens = 500
)

// Safety categories and thresholds understood by the API.
const (
	HarmCategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"

	BlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
)

// FinishReasonSafety marks a candidate cut by the safety filters.
const FinishReasonSafety = "SAFETY"
