package conversation

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "preinscription-chatbot/pkg/log"
)

func newTestStore(t *testing.T, cfg StoreConfig) *Store {
	t.Helper()
	s, err := NewStore(cfg, pkgLog.NewNop())
	require.NoError(t, err)
	return s
}

func TestStore_GetOrCreate(t *testing.T) {
	s := newTestStore(t, StoreConfig{})

	first := s.GetOrCreate("s1")
	assert.Equal(t, "s1", first.SessionID)
	assert.Empty(t, first.History)
	assert.Empty(t, first.Attributes)
	assert.Empty(t, first.LastIntent)
	assert.False(t, first.CreatedAt.IsZero())

	second := s.GetOrCreate("s1")
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 1, s.Len())
}

func TestStore_AppendMessage_TrimsToLimit(t *testing.T) {
	s := newTestStore(t, StoreConfig{})

	for i := 0; i < 15; i++ {
		s.AppendMessage("s1", RoleUser, fmt.Sprintf("m%d", i))
	}

	rec := s.GetOrCreate("s1")
	require.Len(t, rec.History, DefaultHistoryLimit)
	assert.Equal(t, "m5", rec.History[0].Content)
	assert.Equal(t, "m14", rec.History[DefaultHistoryLimit-1].Content)
}

func TestStore_AppendExchange(t *testing.T) {
	s := newTestStore(t, StoreConfig{HistoryLimit: 4})

	s.AppendExchange("s1", "q1", "a1")
	s.AppendExchange("s1", "q2", "a2")
	s.AppendExchange("s1", "q3", "a3")

	rec := s.GetOrCreate("s1")
	require.Len(t, rec.History, 4)
	assert.Equal(t, Message{Role: RoleUser, Content: "q2", Timestamp: rec.History[0].Timestamp}, rec.History[0])
	assert.Equal(t, RoleAssistant, rec.History[1].Role)
	assert.Equal(t, "a2", rec.History[1].Content)
	assert.Equal(t, "q3", rec.History[2].Content)
	assert.Equal(t, "a3", rec.History[3].Content)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := newTestStore(t, StoreConfig{})
	s.AppendMessage("s1", RoleUser, "hello")
	s.MergeAttributes("s1", map[string]any{"name": "Awa"})

	rec := s.GetOrCreate("s1")
	rec.History[0].Content = "changed"
	rec.Attributes["name"] = "changed"

	again := s.GetOrCreate("s1")
	assert.Equal(t, "hello", again.History[0].Content)
	assert.Equal(t, "Awa", again.Attributes["name"])
}

func TestStore_SetIntentAndMergeAttributes(t *testing.T) {
	s := newTestStore(t, StoreConfig{})

	s.SetIntent("s1", IntentFrais)
	s.SetIntent("s1", IntentContact)
	s.MergeAttributes("s1", map[string]any{"name": "Awa", "level": "licence"})
	s.MergeAttributes("s1", map[string]any{"level": "master"})

	rec := s.GetOrCreate("s1")
	assert.Equal(t, IntentContact, rec.LastIntent)
	assert.Equal(t, map[string]any{"name": "Awa", "level": "master"}, rec.Attributes)
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t, StoreConfig{})

	s.Clear("unknown")
	assert.Equal(t, 0, s.Len())

	s.AppendExchange("s1", "q", "a")
	s.SetIntent("s1", IntentAide)
	s.Clear("s1")
	s.Clear("s1")
	assert.Equal(t, 0, s.Len())

	rec := s.GetOrCreate("s1")
	assert.Empty(t, rec.History)
	assert.Empty(t, rec.LastIntent)
}

func TestStore_Summarize(t *testing.T) {
	s := newTestStore(t, StoreConfig{})
	created := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }

	s.AppendExchange("s1", "Bonjour", "Bonjour !")
	s.SetIntent("s1", IntentSalutation)
	s.MergeAttributes("s1", map[string]any{"name": "Awa"})

	assert.Equal(t, Summary{
		MessageCount: 2,
		LastIntent:   IntentSalutation,
		Attributes:   map[string]any{"name": "Awa"},
		CreatedAt:    created,
	}, s.Summarize("s1"))
}

func TestStore_Peek(t *testing.T) {
	s := newTestStore(t, StoreConfig{})

	_, ok := s.Peek("s1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())

	s.AppendMessage("s1", RoleUser, "hi")
	rec, ok := s.Peek("s1")
	assert.True(t, ok)
	assert.Len(t, rec.History, 1)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s := newTestStore(t, StoreConfig{MaxSessions: 2})

	s.GetOrCreate("a")
	s.GetOrCreate("b")
	s.GetOrCreate("a") // a is now the most recent
	s.GetOrCreate("c")

	assert.Equal(t, 2, s.Len())
	_, ok := s.Peek("b")
	assert.False(t, ok)
	_, ok = s.Peek("a")
	assert.True(t, ok)
	_, ok = s.Peek("c")
	assert.True(t, ok)
}

func TestStore_ConcurrentExchangesStayPaired(t *testing.T) {
	s := newTestStore(t, StoreConfig{})

	var wg sync.WaitGroup
	for g := 0; g < 20; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				s.AppendExchange("shared", fmt.Sprintf("q-%d-%d", g, i), fmt.Sprintf("a-%d-%d", g, i))
			}
		}(g)
	}
	wg.Wait()

	rec := s.GetOrCreate("shared")
	require.Len(t, rec.History, DefaultHistoryLimit)
	for i := 0; i < len(rec.History); i += 2 {
		q, a := rec.History[i], rec.History[i+1]
		assert.Equal(t, RoleUser, q.Role)
		assert.Equal(t, RoleAssistant, a.Role)
		assert.Equal(t, "a"+q.Content[1:], a.Content)
	}
}

func TestStore_ConcurrentSessions(t *testing.T) {
	s := newTestStore(t, StoreConfig{})

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", g)
			for i := 0; i < 3; i++ {
				s.AppendMessage(id, RoleUser, id)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
	for g := 0; g < 10; g++ {
		id := fmt.Sprintf("s%d", g)
		rec := s.GetOrCreate(id)
		require.Len(t, rec.History, 3)
		for _, m := range rec.History {
			assert.Equal(t, id, m.Content)
		}
	}
}
