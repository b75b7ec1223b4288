package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	config "github.com/learnai/marketplace-backend/configs"
)

var ErrContextForgeNotConfigured = errors.New("CONTEXTFORGE_URL is not set")

// A2AAgent is an externally hosted AI teacher agent listed by ContextForge.
type A2AAgent struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Visibility  string   `json:"visibility,omitempty"`
	Enabled     *bool    `json:"enabled,omitempty"`
}

// AgentInvocationError carries the upstream status and body of a failed
// agent invocation.
type AgentInvocationError struct {
	StatusCode int
	Body       string
}

func (e *AgentInvocationError) Error() string {
	return fmt.Sprintf("ContextForge invoke failed (%d): %s", e.StatusCode, e.Body)
}

type ContextForgeService struct {
	baseURL    string
	token      string
	teacherTag string
	client     *http.Client
	validate   *validator.Validate
}

func NewContextForgeService(cfg config.ContextForgeConfig) *ContextForgeService {
	tag := cfg.TeacherTag
	if tag == "" {
		tag = "teacher"
	}
	return &ContextForgeService{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		token:      cfg.Token,
		teacherTag: tag,
		client:     &http.Client{Timeout: 15 * time.Second},
		validate:   validator.New(),
	}
}

func (s *ContextForgeService) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}

// ListTeacherAgents returns enabled agents carrying the teacher tag. The
// catalog is an optional enhancement, so an unreachable or unconfigured
// catalog yields an empty list, never an error.
func (s *ContextForgeService) ListTeacherAgents(ctx context.Context) []A2AAgent {
	if s.baseURL == "" {
		return []A2AAgent{}
	}

	urls := []string{
		s.baseURL + "/a2a",
		s.baseURL + "/a2a?tag=" + url.QueryEscape(s.teacherTag),
		s.baseURL + "/a2a?tags=" + url.QueryEscape(s.teacherTag),
	}

	for _, u := range urls {
		agents, err := s.fetchAgents(ctx, u)
		if err != nil {
			continue
		}
		return s.filterTeachers(agents)
	}

	return []A2AAgent{}
}

func (s *ContextForgeService) fetchAgents(ctx context.Context, u string) ([]A2AAgent, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog listing returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		// not a bare array, try the known envelope shapes
		var envelope struct {
			Items  []json.RawMessage `json:"items"`
			Agents []json.RawMessage `json:"agents"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, err
		}
		items = envelope.Items
		if len(items) == 0 {
			items = envelope.Agents
		}
	}

	agents := make([]A2AAgent, 0, len(items))
	for _, item := range items {
		var agent A2AAgent
		if err := json.Unmarshal(item, &agent); err != nil {
			continue
		}
		if err := s.validate.Struct(agent); err != nil {
			continue
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

func (s *ContextForgeService) filterTeachers(agents []A2AAgent) []A2AAgent {
	teachers := make([]A2AAgent, 0, len(agents))
	for _, a := range agents {
		tagged := false
		for _, t := range a.Tags {
			if t == s.teacherTag {
				tagged = true
				break
			}
		}
		if !tagged {
			continue
		}
		if a.Enabled != nil && !*a.Enabled {
			continue
		}
		teachers = append(teachers, a)
	}
	return teachers
}

// InvokeTeacherAgent posts one structured turn to the named agent. The client
// is stateless per call; interview history lives with the caller. A non-2xx
// upstream response surfaces as *AgentInvocationError, and a body that is not
// valid JSON is wrapped as {"raw": text} rather than failing.
func (s *ContextForgeService) InvokeTeacherAgent(ctx context.Context, agentName, message, sessionID string, metadata map[string]interface{}) (interface{}, error) {
	if s.baseURL == "" {
		return nil, ErrContextForgeNotConfigured
	}
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	payload := map[string]interface{}{
		"message":  message,
		"metadata": metadata,
	}
	if sessionID != "" {
		payload["session_id"] = sessionID
	}
	body, _ := json.Marshal(payload)

	endpoint := fmt.Sprintf("%s/a2a/%s/invoke", s.baseURL, url.PathEscape(agentName))
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AgentInvocationError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	var result interface{}
	if err := json.Unmarshal(text, &result); err != nil {
		return map[string]interface{}{"raw": string(text)}, nil
	}
	return result, nil
}
