package conversation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_Layout(t *testing.T) {
	rec := Record{History: []Message{
		{Role: RoleUser, Content: "a"},
		{Role: RoleAssistant, Content: "b"},
	}}

	got := BuildPrompt("SYS", "Bonjour", rec, IntentSalutation, "Awa")

	want := "SYS\n\n" +
		"[User is named Awa]\n" +
		"[Detected intent: salutation]\n" +
		"\n[Recent history:\nUser: a\nAssistant: b]\n" +
		"\nUser: Bonjour\n" +
		"\n[Accueille chaleureusement et propose ton aide]"
	assert.Equal(t, want, got)
}

func TestBuildPrompt_MinimalParts(t *testing.T) {
	got := BuildPrompt("SYS", "Quel temps fait-il ?", Record{}, IntentGeneral, "")

	assert.Equal(t, "SYS\n\n[Detected intent: general]\n\nUser: Quel temps fait-il ?", got)
	assert.NotContains(t, got, "[User is named")
	assert.NotContains(t, got, "[Recent history:")
}

func TestBuildPrompt_HistoryWindow(t *testing.T) {
	var rec Record
	for i := 0; i < 8; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		rec.History = append(rec.History, Message{Role: role, Content: fmt.Sprintf("entry-%d", i)})
	}

	got := BuildPrompt(SystemPrompt, "et le master ?", rec, IntentProgrammes, "")

	assert.NotContains(t, got, "entry-0")
	assert.NotContains(t, got, "entry-1")
	for i := 2; i < 8; i++ {
		assert.Contains(t, got, fmt.Sprintf("entry-%d", i))
	}
	assert.Less(t, strings.Index(got, "entry-2"), strings.Index(got, "entry-7"))
	assert.Contains(t, got, "Assistant: entry-7")
	assert.True(t, strings.HasPrefix(got, SystemPrompt+"\n\n"))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	rec := Record{History: []Message{{Role: RoleUser, Content: "frais ?"}}}
	first := BuildPrompt(SystemPrompt, "combien ?", rec, IntentFrais, "Awa")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildPrompt(SystemPrompt, "combien ?", rec, IntentFrais, "Awa"))
	}
}

func TestBuildPrompt_Enrichments(t *testing.T) {
	for _, intent := range Intents {
		got := BuildPrompt("SYS", "msg", Record{}, intent, "")
		directive, ok := enrichments[intent]
		if ok {
			assert.True(t, strings.HasSuffix(got, "\n\n"+directive), intent)
		} else {
			assert.True(t, strings.HasSuffix(got, "User: msg"), intent)
		}
	}
}
