package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	config "github.com/learnai/marketplace-backend/configs"
	"github.com/learnai/marketplace-backend/models"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"gorm.io/gorm"
)

var ErrEmptyQuery = errors.New("query cannot be empty")

const (
	degradedExplanation = "OpenAI API key is not configured. Showing matching professors from the database based on your search criteria."
	noMatchExplanation  = "No professors found matching your query. Try broadening your search or contact support for personalized recommendations."
	fallbackExplanation = "I've found professors matching your request. Please review their profiles to find the best fit for your learning goals."

	advisorPersona = `You are a helpful educational advisor that matches students with professors for 1-on-1 online lessons.
Your task is to analyze the student's request and recommend 2-3 professors from the available list, explaining why they're a good match.
Be friendly, concise, and focus on how each professor's expertise aligns with the student's needs.`
)

// Explainer produces a short natural-language justification for a set of
// candidate teachers. A nil Explainer means the model backend is not
// configured and the engine runs in degraded mode.
type Explainer interface {
	Explain(ctx context.Context, query, teacherSummaries string) (string, error)
}

type OpenAIExplainer struct {
	client openai.Client
	model  string
}

func NewOpenAIExplainer(cfg config.OpenAIConfig) *OpenAIExplainer {
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	return &OpenAIExplainer{client: client, model: cfg.Model}
}

func (e *OpenAIExplainer) Explain(ctx context.Context, query, teacherSummaries string) (string, error) {
	prompt := fmt.Sprintf(`Student request: %q

Available professors:
%s

Please recommend the 2-3 best professors for this student and explain why they're a great match. Keep your response under 150 words.`, query, teacherSummaries)

	chat, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(e.model),
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(500),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(advisorPersona),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return "", errors.New("empty completion from model")
	}
	return chat.Choices[0].Message.Content, nil
}

type TeacherPublicInfo struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Title      *string  `json:"title"`
	Bio        *string  `json:"bio"`
	Subjects   []string `json:"subjects"`
	Languages  []string `json:"languages"`
	Rating     float64  `json:"rating"`
	HourlyRate float64  `json:"hourly_rate"`
	Image      *string  `json:"image"`
}

type RecommendationResult struct {
	Teachers    []TeacherPublicInfo `json:"teachers"`
	Explanation string              `json:"explanation"`
}

type RecommendationService struct {
	db        *gorm.DB
	explainer Explainer
}

func NewRecommendationService(db *gorm.DB, explainer Explainer) *RecommendationService {
	return &RecommendationService{db: db, explainer: explainer}
}

// RecommendProfessors finds active teachers whose bio or name contain the
// query, or whose subject list has the query as an entry, then asks the model
// backend (when configured) to pick out the best fits. A model failure never
// fails the call; the matched list is still returned with a fallback
// explanation.
func (s *RecommendationService) RecommendProfessors(ctx context.Context, query string, limit int) (*RecommendationResult, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = 5
	}

	// The LIKE over the serialized subjects column is a recall superset;
	// per-entry subject membership is decided below after deserialization.
	like := "%" + normalized + "%"
	var candidates []models.TeacherProfile
	err := s.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = teacher_profiles.user_id").
		Where("teacher_profiles.is_active = ?", true).
		Where("LOWER(teacher_profiles.bio) LIKE ? OR LOWER(teacher_profiles.subjects) LIKE ? OR LOWER(users.name) LIKE ?", like, like, like).
		Order("teacher_profiles.rating desc, teacher_profiles.total_reviews desc").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("teacher search failed: %w", err)
	}

	profiles := make([]models.TeacherProfile, 0, len(candidates))
	for _, p := range candidates {
		if !profileMatchesQuery(p, normalized) {
			continue
		}
		profiles = append(profiles, p)
		if len(profiles) == limit {
			break
		}
	}

	teachers := make([]TeacherPublicInfo, 0, len(profiles))
	for _, p := range profiles {
		teachers = append(teachers, formatTeacherForResponse(p))
	}

	if s.explainer == nil {
		return &RecommendationResult{Teachers: teachers, Explanation: degradedExplanation}, nil
	}
	if len(teachers) == 0 {
		return &RecommendationResult{Teachers: teachers, Explanation: noMatchExplanation}, nil
	}

	explanation, err := s.explainer.Explain(ctx, query, summarizeTeachers(profiles))
	if err != nil {
		log.Printf("🔥 OpenAI explanation failed: %v", err)
		explanation = fallbackExplanation
	}

	return &RecommendationResult{Teachers: teachers, Explanation: explanation}, nil
}

// profileMatchesQuery applies the real matching rule: substring on bio and
// name, entry membership on subjects. The query is already lowercased.
func profileMatchesQuery(p models.TeacherProfile, query string) bool {
	if p.Bio != nil && strings.Contains(strings.ToLower(*p.Bio), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.User.Name), query) {
		return true
	}
	for _, subject := range p.Subjects {
		if strings.EqualFold(strings.TrimSpace(subject), query) {
			return true
		}
	}
	return false
}

func formatTeacherForResponse(p models.TeacherProfile) TeacherPublicInfo {
	return TeacherPublicInfo{
		ID:         p.UserID.String(),
		Name:       p.User.Name,
		Title:      p.Title,
		Bio:        p.Bio,
		Subjects:   p.Subjects,
		Languages:  p.Languages,
		Rating:     p.Rating,
		HourlyRate: p.HourlyRate,
		Image:      p.User.Image,
	}
}

func summarizeTeachers(profiles []models.TeacherProfile) string {
	summaries := make([]string, 0, len(profiles))
	for i, p := range profiles {
		bio := "Experienced educator"
		if p.Bio != nil && *p.Bio != "" {
			bio = *p.Bio
			// cut on a rune boundary so the prompt stays valid UTF-8
			if runes := []rune(bio); len(runes) > 200 {
				bio = string(runes[:200])
			}
		}
		summaries = append(summaries, fmt.Sprintf(`%d. %s (Rating: %.1f/5.0, Reviews: %d)
   - Subjects: %s
   - Languages: %s
   - Rate: $%.2f/hour
   - Bio: %s`,
			i+1, p.User.Name, p.Rating, p.TotalReviews,
			strings.Join(p.Subjects, ", "), strings.Join(p.Languages, ", "),
			p.HourlyRate, bio))
	}
	return strings.Join(summaries, "\n\n")
}
