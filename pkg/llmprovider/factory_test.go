package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"preinscription-chatbot/config"
	"preinscription-chatbot/pkg/llmprovider"
	pkgLog "preinscription-chatbot/pkg/log"
)

func TestInitializeProviders_PriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 2, APIKey: "k", Model: "gpt-4o-mini"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.0-flash-exp", Timeout: "10s"},
			{Name: "qwen", Enabled: false, Priority: 3, APIKey: "k", Model: "qwen-plus"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "gemini" || providers[1].Name() != "openai" {
		t.Errorf("Unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
	if providers[0].Model() != "gemini-2.0-flash-exp" {
		t.Errorf("Unexpected model: %s", providers[0].Model())
	}
}

func TestInitializeProviders_SkipsBrokenProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.0-flash-exp"},
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
			{Name: "mystery", Enabled: true, Priority: 3, APIKey: "k", Model: "m"},
			{Name: "deepseek", Enabled: true, Priority: 4, APIKey: "k", Model: "deepseek-chat", BaseURL: "https://api.deepseek.com/v1"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "deepseek" {
		t.Fatalf("Expected only the configured deepseek provider, got %d", len(providers))
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	if _, err := llmprovider.InitializeProviders(context.Background(), nil, nil); err == nil {
		t.Error("Expected error for nil config")
	}

	_, err := llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Model: "m", APIKey: "k"}},
	}, nil)
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}

	_, err = llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, Model: "m"}},
	}, nil)
	if err == nil {
		t.Error("Expected error when every provider fails to initialize")
	}
}

func TestNewManagerFromConfig(t *testing.T) {
	if _, err := llmprovider.NewManagerFromConfig(nil, &config.LLMConfig{RetryDelay: "soon"}, nil); err == nil {
		t.Error("Expected error for invalid retry delay")
	}

	m, err := llmprovider.NewManagerFromConfig(nil, &config.LLMConfig{RetryDelay: "1s", MaxTotalTimeout: "30s"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := m.Generate(ctx, "Bonjour"); !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}
}
