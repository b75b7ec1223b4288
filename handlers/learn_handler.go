package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/learnai/marketplace-backend/services"
)

type LearnHandler struct {
	Agents *services.ContextForgeService
}

func (h *LearnHandler) ListAgents(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"agents": h.Agents.ListTeacherAgents(c.Context())})
}

type InterviewPlanRequest struct {
	AgentName      string   `json:"agent_name" validate:"required,min=2"`
	JobDescription string   `json:"job_description" validate:"required,min=20"`
	Seniority      string   `json:"seniority,omitempty"`
	FocusAreas     []string `json:"focus_areas,omitempty"`
	Language       string   `json:"language,omitempty"`
}

type InterviewTurn struct {
	Q     string `json:"q"`
	A     string `json:"a"`
	Score *int   `json:"score,omitempty" validate:"omitempty,min=0,max=10"`
}

type InterviewSessionRequest struct {
	AgentName      string          `json:"agent_name" validate:"required,min=2"`
	JobDescription string          `json:"job_description" validate:"required,min=20"`
	History        []InterviewTurn `json:"history,omitempty" validate:"dive"`
	UserAnswer     string          `json:"user_answer" validate:"required"`
	Seniority      string          `json:"seniority,omitempty"`
	FocusAreas     []string        `json:"focus_areas,omitempty"`
	Language       string          `json:"language,omitempty"`
	SessionID      string          `json:"session_id,omitempty"`
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func planPrompt(req InterviewPlanRequest) string {
	focus, _ := json.Marshal(req.FocusAreas)
	return strings.TrimSpace(fmt.Sprintf(`
You are a professor that designs technical interview plans.
Return ONLY valid JSON:

{
  "plan_bullets": string[],        // 3-6 bullets
  "rubric": {
    "dimensions": string[],        // 4-8 items
    "scoring_notes": string[]      // short guidelines
  },
  "opening_question": string
}

Keep concise. No markdown. No extra keys.

Seniority: %s
Language: %s
Focus areas: %s

JOB DESCRIPTION:
%s`, orDefault(req.Seniority, "unspecified"), orDefault(req.Language, "en"), string(focus), req.JobDescription))
}

func turnPrompt(req InterviewSessionRequest) string {
	focus, _ := json.Marshal(req.FocusAreas)
	history, _ := json.Marshal(req.History)
	historyJSON := string(history)
	if len(historyJSON) > 7000 {
		historyJSON = historyJSON[:7000]
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are "Professor Nova", an expert technical interviewer for the role described below.

RULES:
- Ask EXACTLY ONE question at a time.
- After the candidate answer, give 2-4 feedback bullets (max), a score 0-10 (integer), then the next question.
- Keep everything short.
- Return ONLY valid JSON in this exact schema:

{
  "feedback_bullets": string[],
  "score_0_10": number,
  "next_question": string,
  "tags": string[]
}

Seniority: %s
Language: %s
Focus areas: %s

JOB DESCRIPTION:
%s

INTERVIEW HISTORY (JSON):
%s

CANDIDATE ANSWER:
%s`, orDefault(req.Seniority, "unspecified"), orDefault(req.Language, "en"), string(focus), req.JobDescription, historyJSON, req.UserAnswer))
}

func (h *LearnHandler) CreatePlan(c *fiber.Ctx) error {
	var req InterviewPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	result, err := h.Agents.InvokeTeacherAgent(c.Context(), req.AgentName, planPrompt(req), "", map[string]interface{}{"type": "plan"})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true, "result": result})
}

func (h *LearnHandler) SessionTurn(c *fiber.Ctx) error {
	var req InterviewSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	result, err := h.Agents.InvokeTeacherAgent(c.Context(), req.AgentName, turnPrompt(req), req.SessionID, map[string]interface{}{"type": "interview_turn"})
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true, "result": result})
}
