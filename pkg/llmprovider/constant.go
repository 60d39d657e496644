package llmprovider

// Provider names accepted in config
const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

// Log prefixes
const (
	LogPrefixGenerateContent     = "pkg.llmprovider.Manager.GenerateContent"
	LogPrefixInitializeProviders = "pkg.llmprovider.InitializeProviders"
)
