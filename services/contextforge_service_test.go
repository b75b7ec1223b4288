package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/learnai/marketplace-backend/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTeacherAgentsUnconfigured(t *testing.T) {
	svc := NewContextForgeService(config.ContextForgeConfig{})

	agents := svc.ListTeacherAgents(context.Background())
	assert.NotNil(t, agents)
	assert.Empty(t, agents)
}

func TestListTeacherAgentsFiltersCatalog(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/a2a", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "prof-nova", "tags": ["teacher"], "enabled": true},
			{"name": "prof-off", "tags": ["teacher"], "enabled": false},
			{"name": "sales-bot", "tags": ["sales"]},
			{"tags": ["teacher"]},
			{"name": "prof-quiet", "tags": ["teacher"]}
		]`))
	}))
	defer ts.Close()

	svc := NewContextForgeService(config.ContextForgeConfig{URL: ts.URL, TeacherTag: "teacher"})
	agents := svc.ListTeacherAgents(context.Background())

	// disabled, wrong-tag and nameless entries are dropped; enabled defaults to true
	require.Len(t, agents, 2)
	assert.Equal(t, "prof-nova", agents[0].Name)
	assert.Equal(t, "prof-quiet", agents[1].Name)
}

func TestListTeacherAgentsTriesURLVariants(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tag") != "teacher" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"items": [{"name": "prof-nova", "tags": ["teacher"]}]}`))
	}))
	defer ts.Close()

	svc := NewContextForgeService(config.ContextForgeConfig{URL: ts.URL})
	agents := svc.ListTeacherAgents(context.Background())

	require.Len(t, agents, 1)
	assert.Equal(t, "prof-nova", agents[0].Name)
}

func TestListTeacherAgentsUnreachableCatalog(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	ts.Close() // connection refused from here on

	svc := NewContextForgeService(config.ContextForgeConfig{URL: ts.URL})
	agents := svc.ListTeacherAgents(context.Background())
	assert.Empty(t, agents)
}

func TestInvokeTeacherAgentSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/a2a/prof-nova/invoke", r.URL.Path)
		require.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "hello", payload["message"])
		assert.Equal(t, "sess-1", payload["session_id"])

		w.Write([]byte(`{"next_question": "What is a goroutine?"}`))
	}))
	defer ts.Close()

	svc := NewContextForgeService(config.ContextForgeConfig{URL: ts.URL, Token: "secret-token"})
	result, err := svc.InvokeTeacherAgent(context.Background(), "prof-nova", "hello", "sess-1", nil)
	require.NoError(t, err)

	m, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "What is a goroutine?", m["next_question"])
}

func TestInvokeTeacherAgentUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("agent exploded"))
	}))
	defer ts.Close()

	svc := NewContextForgeService(config.ContextForgeConfig{URL: ts.URL})
	_, err := svc.InvokeTeacherAgent(context.Background(), "prof-nova", "hello", "", nil)

	var invErr *AgentInvocationError
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, http.StatusInternalServerError, invErr.StatusCode)
	assert.Equal(t, "agent exploded", invErr.Body)
}

func TestInvokeTeacherAgentWrapsNonJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text reply"))
	}))
	defer ts.Close()

	svc := NewContextForgeService(config.ContextForgeConfig{URL: ts.URL})
	result, err := svc.InvokeTeacherAgent(context.Background(), "prof-nova", "hello", "", nil)
	require.NoError(t, err)

	m, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "plain text reply", m["raw"])
}

func TestInvokeTeacherAgentUnconfigured(t *testing.T) {
	svc := NewContextForgeService(config.ContextForgeConfig{})

	_, err := svc.InvokeTeacherAgent(context.Background(), "prof-nova", "hello", "", nil)
	assert.ErrorIs(t, err, ErrContextForgeNotConfigured)
}
