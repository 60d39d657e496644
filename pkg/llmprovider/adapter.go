package llmprovider

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"preinscription-chatbot/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	genCfg := gemini.DefaultGenerationConfig()
	if req.Temperature > 0 {
		genCfg.Temperature = req.Temperature
	}
	if req.MaxTokens > 0 {
		genCfg.MaxOutputTokens = req.MaxTokens
	}

	geminiReq := gemini.GenerateRequest{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Contents:          convertToGeminiContents(req.Messages),
		GenerationConfig:  genCfg,
		SafetySettings:    gemini.DefaultSafetySettings(),
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Err: err}
	}
	if reason := resp.BlockReason(); reason != "" {
		return nil, &ProviderError{Provider: ProviderGemini, Err: fmt.Errorf("%w: %s", ErrBlocked, reason)}
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text()),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	role := msg.Role
	switch role {
	case RoleAssistant:
		role = "model"
	case RoleSystem:
		role = ""
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

// chatCompleter is the slice of the go-openai client the adapter needs.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAdapter serves any OpenAI compatible chat completion API
// (OpenAI, DeepSeek, Qwen compatible mode) through go-openai.
type OpenAIAdapter struct {
	client chatCompleter
	name   string
	model  string
}

// NewOpenAIAdapter creates a new OpenAI compatible adapter
func NewOpenAIAdapter(client chatCompleter, name, model string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = gemini.DefaultTemperature
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = gemini.DefaultMaxOutputTokens
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertToOpenAIMessages(req),
		Temperature: float32(temperature),
		TopP:        float32(gemini.DefaultTopP),
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: a.name, Err: ErrEmptyResponse}
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return nil, &ProviderError{Provider: a.name, Err: fmt.Errorf("%w: %s", ErrBlocked, choice.FinishReason)}
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, choice.Message.Content),
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func convertToOpenAIMessages(req *Request) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		case RoleSystem:
			role = openai.ChatMessageRoleSystem
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: joinParts(m.Parts)})
	}
	return msgs
}

func joinParts(parts []Part) string {
	return (&Response{Content: Message{Parts: parts}}).Text()
}
