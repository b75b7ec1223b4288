package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	config "github.com/learnai/marketplace-backend/configs"
	"github.com/learnai/marketplace-backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLearnApp(gatewayURL string) *fiber.App {
	app := fiber.New()
	h := &LearnHandler{Agents: services.NewContextForgeService(config.ContextForgeConfig{URL: gatewayURL})}
	learn := app.Group("/api/v1/learn")
	learn.Post("/plan", h.CreatePlan)
	learn.Post("/session", h.SessionTurn)
	return app
}

func planBody() map[string]interface{} {
	return map[string]interface{}{
		"agent_name":      "prof-nova",
		"job_description": "Senior Go engineer building payment systems at scale.",
	}
}

func TestCreatePlanRelaysAgentResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/a2a/prof-nova/invoke", r.URL.Path)
		w.Write([]byte(`{"opening_question": "Describe a race you debugged."}`))
	}))
	defer ts.Close()

	app := newLearnApp(ts.URL)
	resp := postJSON(t, app, "/api/v1/learn/plan", "", planBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		OK     bool                   `json:"ok"`
		Result map[string]interface{} `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.Equal(t, "Describe a race you debugged.", body.Result["opening_question"])
}

func TestCreatePlanUpstreamFailureReturns502(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("agent exploded"))
	}))
	defer ts.Close()

	app := newLearnApp(ts.URL)
	resp := postJSON(t, app, "/api/v1/learn/plan", "", planBody())
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.OK)
	assert.Contains(t, body.Error, "agent exploded")
}

func TestCreatePlanRejectsShortJobDescription(t *testing.T) {
	app := newLearnApp("http://unused.test")

	resp := postJSON(t, app, "/api/v1/learn/plan", "", map[string]interface{}{
		"agent_name":      "prof-nova",
		"job_description": "too short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
