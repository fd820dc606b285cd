package coach

import (
	"encoding/json"
	"fmt"
)

// The model's output is untrusted free text. Every parse function in this
// file is total: malformed input degrades to documented defaults or a
// fixed fallback object, never an error. The educational flow must not
// break on a bad model response.

// Canned defaults for question fields the model omitted.
const (
	defaultRationale = "Encourages the student to think more deeply about their writing."
	defaultOutcome   = "The student reflects on their writing choices."
)

var defaultFollowUps = []string{"What makes you say that?", "Can you say more about that?"}

// rawQuestion mirrors the requested JSON shape with every field optional.
type rawQuestion struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Question        string   `json:"question"`
	Rationale       string   `json:"educational_rationale"`
	ExpectedOutcome string   `json:"expected_outcome"`
	FollowUpPrompts []string `json:"follow_up_prompts"`
}

type rawQuestionSet struct {
	Questions           []rawQuestion `json:"questions"`
	OverallGoal         string        `json:"overall_educational_goal"`
	ReflectionPrompt    string        `json:"reflection_prompt"`
	NextStepSuggestions []string      `json:"next_step_suggestions"`
}

// questionTypes is the set of valid question types; anything else
// defaults to clarifying.
var questionTypes = map[QuestionType]bool{
	TypeClarifying:  true,
	TypeExpanding:   true,
	TypeChallenging: true,
	TypePerspective: true,
	TypeReflection:  true,
}

// parseQuestionSet interprets raw model output as a question set.
// Individual missing fields get positional or canned defaults; output
// that cannot be parsed at all yields the fixed fallback set.
func parseQuestionSet(raw json.RawMessage) *QuestionSet {
	var parsed rawQuestionSet
	if err := json.Unmarshal(raw, &parsed); err != nil || len(parsed.Questions) == 0 {
		return fallbackQuestionSet()
	}

	set := &QuestionSet{
		Questions:           make([]Question, len(parsed.Questions)),
		OverallGoal:         parsed.OverallGoal,
		ReflectionPrompt:    parsed.ReflectionPrompt,
		NextStepSuggestions: parsed.NextStepSuggestions,
	}

	for i, rq := range parsed.Questions {
		set.Questions[i] = sanitizeQuestion(rq, i)
	}

	if set.OverallGoal == "" {
		set.OverallGoal = "Develop the student's writing through guided reflection."
	}
	if set.ReflectionPrompt == "" {
		set.ReflectionPrompt = "Which of these questions changed how you see your draft?"
	}
	if len(set.NextStepSuggestions) == 0 {
		set.NextStepSuggestions = []string{"Pick one question and free-write your answer for five minutes."}
	}

	return set
}

// sanitizeQuestion fills a partially populated question into a fully
// populated one. idx is the 0-based position; the positional fallback ID
// is 1-based ("q1", "q2", ...).
func sanitizeQuestion(rq rawQuestion, idx int) Question {
	q := Question{
		ID:              rq.ID,
		Type:            QuestionType(rq.Type),
		Question:        rq.Question,
		Rationale:       rq.Rationale,
		ExpectedOutcome: rq.ExpectedOutcome,
		FollowUpPrompts: rq.FollowUpPrompts,
	}

	if q.ID == "" {
		q.ID = fmt.Sprintf("q%d", idx+1)
	}
	if !questionTypes[q.Type] {
		q.Type = TypeClarifying
	}
	if q.Rationale == "" {
		q.Rationale = defaultRationale
	}
	if q.ExpectedOutcome == "" {
		q.ExpectedOutcome = defaultOutcome
	}
	if len(q.FollowUpPrompts) == 0 {
		q.FollowUpPrompts = append([]string(nil), defaultFollowUps...)
	}

	return q
}

// fallbackQuestionSet is returned when the model output cannot be parsed
// as a question set at all.
func fallbackQuestionSet() *QuestionSet {
	return &QuestionSet{
		Questions: []Question{
			{
				ID:              "fallback1",
				Type:            TypeClarifying,
				Question:        "What is the main point you want your reader to take away from this piece?",
				Rationale:       "Articulating the main point helps the student evaluate everything else they have written against it.",
				ExpectedOutcome: "The student states their central idea in their own words.",
				FollowUpPrompts: []string{"How does your opening support that point?"},
			},
		},
		OverallGoal:         "Develop the student's writing through guided reflection.",
		ReflectionPrompt:    "Which part of your draft are you least sure about, and why?",
		NextStepSuggestions: []string{"Reread your draft and mark the sentence that best states your main point."},
	}
}

type rawPerspective struct {
	ID                  string   `json:"id"`
	Perspective         string   `json:"perspective"`
	Description         string   `json:"description"`
	QuestionsToExplore  []string `json:"questions_to_explore"`
	EducationalValue    string   `json:"educational_value"`
	ResourceSuggestions []string `json:"resource_suggestions"`
}

type rawPerspectiveSet struct {
	Perspectives []rawPerspective `json:"perspectives"`
}

// parsePerspectives interprets raw model output as perspective
// suggestions, falling back to a single fixed perspective when the output
// cannot be parsed.
func parsePerspectives(raw json.RawMessage) []Perspective {
	var parsed rawPerspectiveSet
	if err := json.Unmarshal(raw, &parsed); err != nil || len(parsed.Perspectives) == 0 {
		return fallbackPerspectives()
	}

	out := make([]Perspective, len(parsed.Perspectives))
	for i, rp := range parsed.Perspectives {
		p := Perspective{
			ID:                  rp.ID,
			Perspective:         rp.Perspective,
			Description:         rp.Description,
			QuestionsToExplore:  rp.QuestionsToExplore,
			EducationalValue:    rp.EducationalValue,
			ResourceSuggestions: rp.ResourceSuggestions,
		}
		if p.ID == "" {
			p.ID = fmt.Sprintf("p%d", i+1)
		}
		out[i] = p
	}
	return out
}

func fallbackPerspectives() []Perspective {
	return []Perspective{
		{
			ID:          "fallback1",
			Perspective: "The skeptical reader",
			Description: "Someone who does not share your assumptions and needs to be convinced from scratch.",
			QuestionsToExplore: []string{
				"What would this reader question first?",
				"Which of your claims relies on something you have not shown?",
			},
			EducationalValue:    "Arguing to a skeptic exposes unstated assumptions and weak evidence.",
			ResourceSuggestions: []string{"Find one source that disagrees with your position."},
		},
	}
}

// parseValidation interprets raw model output as a soundness judgement.
// This path fails OPEN: unparseable output is assumed sound so a broken
// review never blocks the student. Contrast with the question and
// perspective fallbacks, which substitute safe content.
func parseValidation(raw json.RawMessage) *ValidationResult {
	var v ValidationResult
	if err := json.Unmarshal(raw, &v); err != nil {
		return failOpenValidation()
	}
	return &v
}

func failOpenValidation() *ValidationResult {
	return &ValidationResult{
		IsEducationallySound: true,
		ProvidesQuestions:    true,
		Issues:               []string{},
		Suggestions:          []string{},
	}
}
