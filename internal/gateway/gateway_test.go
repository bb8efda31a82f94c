package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zayeemZaki/ai-memory-app/internal/core"
)

func TestChat(t *testing.T) {
	var gotReq core.ChatRequest
	var gotKey string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat", r.URL.Path)
		gotKey = r.Header.Get("x-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(core.ChatResponse{
			Success:  true,
			Action:   core.ActionAddFact,
			Response: "Got it! I've added that to your knowledge graph.",
			Details:  &core.Details{NodesCreated: 2, EdgesCreated: 1},
		})
	}))
	defer ts.Close()

	gw := New(ts.URL, "test-secret")
	resp, err := gw.Chat(context.Background(), core.ChatRequest{
		Message:    "Zayeem is passionate about AI",
		ActionType: core.ActionAddFact,
		History: []core.HistoryEntry{
			{Role: core.RoleUser, Content: "hello"},
			{Role: core.RoleModel, Content: "hi there"},
		},
		SessionID: "session_1_abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-secret", gotKey)
	assert.Equal(t, "Zayeem is passionate about AI", gotReq.Message)
	assert.Equal(t, core.ActionAddFact, gotReq.ActionType)
	assert.Len(t, gotReq.History, 2)
	assert.Equal(t, "session_1_abc", gotReq.SessionID)

	assert.Equal(t, core.ActionAddFact, resp.Action)
	require.NotNil(t, resp.Details)
	assert.Equal(t, 2, resp.Details.NodesCreated)
}

func TestChatErrorDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid or missing API Key"})
	}))
	defer ts.Close()

	gw := New(ts.URL, "wrong-secret")
	_, err := gw.Chat(context.Background(), core.ChatRequest{Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid or missing API Key")
}

func TestGraph(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graph", r.URL.Path)
		require.Equal(t, "session_1_abc", r.URL.Query().Get("session_id"))
		require.Equal(t, "test-secret", r.Header.Get("x-api-key"))

		json.NewEncoder(w).Encode(core.GraphSnapshot{
			Nodes: []core.GraphNode{
				{ID: "n1", Name: "Zayeem", Group: core.GroupPerson, IsGlobal: false},
				{ID: "n2", Name: "AI", Group: core.GroupTechnology, IsGlobal: true},
			},
			Links: []core.GraphLink{
				{Source: "n1", Target: "n2", Name: "PASSIONATE_ABOUT"},
			},
		})
	}))
	defer ts.Close()

	gw := New(ts.URL, "test-secret")
	snap, err := gw.Graph(context.Background(), "session_1_abc")
	require.NoError(t, err)
	require.Len(t, snap.Nodes, 2)
	require.Len(t, snap.Links, 1)
	assert.True(t, snap.Nodes[1].IsGlobal)
	assert.Equal(t, "PASSIONATE_ABOUT", snap.Links[0].Name)
}

func TestGraphRoundTripIdentity(t *testing.T) {
	snapshot := core.GraphSnapshot{
		Nodes: []core.GraphNode{
			{ID: "a", Name: "A", Group: core.GroupPerson},
			{ID: "b", Name: "B", Group: core.GroupCompany, IsGlobal: true},
		},
		Links: []core.GraphLink{{Source: "a", Target: "b", Name: "WORKS_AT"}},
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(snapshot)
	}))
	defer ts.Close()

	gw := New(ts.URL, "s")
	first, err := gw.Graph(context.Background(), "sid")
	require.NoError(t, err)
	second, err := gw.Graph(context.Background(), "sid")
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "neo4j": "connected"})
	}))
	defer ts.Close()

	require.NoError(t, New(ts.URL, "s").Health(context.Background()))
}
