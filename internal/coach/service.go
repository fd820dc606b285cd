package coach

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inkmentor/internal/llm"
	"inkmentor/internal/profile"
)

// Service is the only piece of the AI subsystem exposed to the rest of
// the application. Each operation performs at most one LLM round trip
// (plus, for question generation, one profile lookup). The service holds
// no mutable state, so concurrent calls need no coordination.
type Service struct {
	provider llm.Provider
	profiles profile.Fetcher
	logger   *zap.Logger
	cfg      Config
}

// NewService creates a coach service. profiles may be nil, in which case
// question generation is never personalized. A nil logger is replaced
// with a no-op logger.
func NewService(provider llm.Provider, profiles profile.Fetcher, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		profiles: profiles,
		logger:   logger,
		cfg:      cfg,
	}
}

// GenerateQuestions produces a personalized Socratic question set for the
// given writing context.
//
// When the context names a student, their learning profile is fetched and
// used to shape the prompt and post-process the questions. A failed
// profile fetch is logged and treated as "no profile"; it never aborts
// generation. A transport failure from the model propagates to the
// caller.
func (s *Service) GenerateQuestions(ctx context.Context, wctx WritingContext) (*QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	prof := s.lookupProfile(ctx, wctx.StudentID)

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionMessage(wctx, prof)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	set := parseQuestionSet(resp.Content)
	if prof != nil {
		set.Questions = AdaptQuestions(prof, set.Questions)
	}
	set.RequestID = uuid.NewString()
	set.Action = actionFor(wctx.Stage)

	s.logger.Debug("generated questions",
		zap.String("request_id", set.RequestID),
		zap.String("action", set.Action),
		zap.Int("questions", len(set.Questions)),
		zap.Bool("personalized", prof != nil),
		zap.Float64("estimated_cost_usd", resp.Usage.EstimatedCost),
	)

	return set, nil
}

// GeneratePerspectives suggests alternative viewpoints on a topic given
// the arguments the student is already making. A transport failure from
// the model propagates to the caller; malformed model output degrades to
// the fixed fallback perspective.
func (s *Service) GeneratePerspectives(ctx context.Context, topic string, currentArguments []string, contextText string) ([]Perspective, error) {
	ctx = llm.WithPurpose(ctx, "perspective-gen")

	req := llm.Request{
		System: perspectiveSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPerspectiveMessage(topic, currentArguments, contextText)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("perspective generation failed: %w", err)
	}

	return parsePerspectives(resp.Content), nil
}

// ValidateResponse judges a previously generated response for educational
// soundness. This operation fails open: any failure, transport included,
// yields the assume-sound result rather than an error, so a broken
// review can never block the student.
func (s *Service) ValidateResponse(ctx context.Context, responseText string) *ValidationResult {
	ctx = llm.WithPurpose(ctx, "validation")

	req := llm.Request{
		System: validationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildValidationMessage(responseText)},
		},
		Schema:      ValidationSchema,
		MaxTokens:   s.cfg.ValidationMaxTokens,
		Temperature: s.cfg.ValidationTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.logger.Warn("validation call failed; assuming sound", zap.Error(err))
		return failOpenValidation()
	}

	return parseValidation(resp.Content)
}

// HealthCheck reports whether the model endpoint is reachable and
// answering.
func (s *Service) HealthCheck(ctx context.Context) bool {
	return s.provider.HealthCheck(ctx)
}

// lookupProfile fetches the student's profile, absorbing every failure.
func (s *Service) lookupProfile(ctx context.Context, studentID string) *profile.StudentLearningProfile {
	if studentID == "" || s.profiles == nil {
		return nil
	}
	p, err := s.profiles.Fetch(ctx, studentID)
	if err != nil {
		s.logger.Warn("profile fetch failed; generating unpersonalized questions",
			zap.String("student_id", studentID),
			zap.Error(err),
		)
		return nil
	}
	return p
}
