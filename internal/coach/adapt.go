package coach

import (
	"slices"
	"strings"

	"inkmentor/internal/profile"
)

// Texts appended or prepended by the adaptation rules. Each rule checks
// for its own text before applying, so adapting an already-adapted list
// is a no-op and AdaptQuestions is idempotent.
const (
	simplifiedSuffix  = " (Simplified for current cognitive load.)"
	reassuranceClause = " Take your time with this — there is no wrong answer."

	processImprovementPrompt = "How could you improve your thinking process next time?"
	evidenceStrengthPrompt   = "How strong is the evidence behind this point?"
)

var concretizingPrompts = []string{
	"Can you think of a specific example?",
	"What have you experienced personally that relates to this?",
}

// AdaptQuestions personalizes generated questions using the learner
// profile. It is a pure function: the input slice and its questions are
// never modified, and the rules apply in a fixed order so the output is
// deterministic. A nil profile returns an unmodified copy.
func AdaptQuestions(p *profile.StudentLearningProfile, questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		if p == nil {
			q.FollowUpPrompts = slices.Clone(q.FollowUpPrompts)
			out[i] = q
			continue
		}
		out[i] = adaptQuestion(p, q)
	}
	return out
}

// adaptQuestion applies the adaptation rules to a single question, in
// order. q is a copy; only its cloned follow-up slice is mutated.
func adaptQuestion(p *profile.StudentLearningProfile, q Question) Question {
	q.FollowUpPrompts = slices.Clone(q.FollowUpPrompts)

	// Rule 1: concrete thinkers get grounding prompts ahead of the
	// existing follow-ups on challenging and perspective questions.
	if p.Preferences.QuestionComplexity == "concrete" &&
		(q.Type == TypeChallenging || q.Type == TypePerspective) &&
		!hasPrefix(q.FollowUpPrompts, concretizingPrompts) {
		q.FollowUpPrompts = append(slices.Clone(concretizingPrompts), q.FollowUpPrompts...)
	}

	// Rule 2: under cognitive overload, note the simplification and cut
	// follow-ups to at most one. Runs after rule 1, so an overloaded
	// concrete thinker keeps only the first grounding prompt.
	if p.CurrentState.CognitiveLoad == "overload" {
		if !strings.HasSuffix(q.Rationale, simplifiedSuffix) {
			q.Rationale += simplifiedSuffix
		}
		if len(q.FollowUpPrompts) > 1 {
			q.FollowUpPrompts = q.FollowUpPrompts[:1]
		}
	}

	// Rule 3: reassure a frustrated student in the question text itself.
	if p.CurrentState.EmotionalState == "frustrated" &&
		!strings.HasSuffix(q.Question, reassuranceClause) {
		q.Question += reassuranceClause
	}

	// Rule 4: strong metacognition earns a process prompt on reflection
	// questions.
	if p.Strengths["metacognition"] > profile.StrengthHigh &&
		q.Type == TypeReflection &&
		!slices.Contains(q.FollowUpPrompts, processImprovementPrompt) {
		q.FollowUpPrompts = append(q.FollowUpPrompts, processImprovementPrompt)
	}

	// Rule 5: strong evidence analysis earns an evidence prompt on
	// expanding questions.
	if p.Strengths["evidenceAnalysis"] > profile.StrengthHigh &&
		q.Type == TypeExpanding &&
		!slices.Contains(q.FollowUpPrompts, evidenceStrengthPrompt) {
		q.FollowUpPrompts = append(q.FollowUpPrompts, evidenceStrengthPrompt)
	}

	return q
}

// hasPrefix reports whether prompts starts with all of prefix, in order.
func hasPrefix(prompts, prefix []string) bool {
	if len(prompts) < len(prefix) {
		return false
	}
	return slices.Equal(prompts[:len(prefix)], prefix)
}
