package coach

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionSet_WellFormed(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{
				"id": "q1",
				"type": "challenging",
				"question": "What would someone who disagrees say?",
				"educational_rationale": "Surfaces counter-arguments.",
				"expected_outcome": "The student anticipates objections.",
				"follow_up_prompts": ["Who disagrees most strongly?"]
			}
		],
		"overall_educational_goal": "Strengthen the argument.",
		"reflection_prompt": "What surprised you?",
		"next_step_suggestions": ["Draft a rebuttal paragraph."]
	}`)

	set := parseQuestionSet(raw)
	require.Len(t, set.Questions, 1)
	assert.Equal(t, "q1", set.Questions[0].ID)
	assert.Equal(t, TypeChallenging, set.Questions[0].Type)
	assert.Equal(t, "Strengthen the argument.", set.OverallGoal)
}

func TestParseQuestionSet_FillsMissingFields(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "First?"},
			{"id": "custom", "type": "bogus-type", "question": "Second?"}
		]
	}`)

	set := parseQuestionSet(raw)
	require.Len(t, set.Questions, 2)

	// Positional ID fallback is 1-based.
	q1 := set.Questions[0]
	assert.Equal(t, "q1", q1.ID)
	assert.Equal(t, TypeClarifying, q1.Type)
	assert.Equal(t, defaultRationale, q1.Rationale)
	assert.Equal(t, defaultOutcome, q1.ExpectedOutcome)
	assert.NotEmpty(t, q1.FollowUpPrompts)

	// Present ID is preserved; invalid type defaults.
	q2 := set.Questions[1]
	assert.Equal(t, "custom", q2.ID)
	assert.Equal(t, TypeClarifying, q2.Type)

	// Container-level defaults.
	assert.NotEmpty(t, set.OverallGoal)
	assert.NotEmpty(t, set.ReflectionPrompt)
	assert.NotEmpty(t, set.NextStepSuggestions)
}

func TestParseQuestionSet_NonJSONFallsBack(t *testing.T) {
	set := parseQuestionSet(json.RawMessage(`I'm sorry, I can't produce JSON today.`))

	require.Len(t, set.Questions, 1)
	assert.Equal(t, "fallback1", set.Questions[0].ID)
	assert.Equal(t, TypeClarifying, set.Questions[0].Type)
	assert.NotEmpty(t, set.Questions[0].Question)
	assert.NotEmpty(t, set.OverallGoal)
}

func TestParseQuestionSet_EmptyQuestionsFallsBack(t *testing.T) {
	set := parseQuestionSet(json.RawMessage(`{"questions": []}`))
	require.Len(t, set.Questions, 1)
	assert.Equal(t, "fallback1", set.Questions[0].ID)
}

func TestParseQuestionSet_UniqueIDs(t *testing.T) {
	raw := json.RawMessage(`{"questions": [{"question":"a"},{"question":"b"},{"question":"c"}]}`)
	set := parseQuestionSet(raw)

	seen := map[string]bool{}
	for _, q := range set.Questions {
		require.NotEmpty(t, q.ID)
		require.False(t, seen[q.ID], "duplicate id %q", q.ID)
		seen[q.ID] = true
	}
}

func TestParsePerspectives_WellFormed(t *testing.T) {
	raw := json.RawMessage(`{
		"perspectives": [
			{"id": "p1", "perspective": "Economic lens", "description": "Costs and incentives."},
			{"perspective": "Historical lens"}
		]
	}`)

	out := parsePerspectives(raw)
	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p2", out[1].ID) // positional fallback
}

func TestParsePerspectives_NonJSONFallsBack(t *testing.T) {
	out := parsePerspectives(json.RawMessage(`nope`))
	require.Len(t, out, 1)
	assert.Equal(t, "fallback1", out[0].ID)
	assert.NotEmpty(t, out[0].Perspective)
	assert.NotEmpty(t, out[0].QuestionsToExplore)
}

func TestParseValidation_WellFormed(t *testing.T) {
	raw := json.RawMessage(`{
		"is_educationally_sound": false,
		"contains_answers": true,
		"provides_questions": false,
		"aligns_with_learning_objectives": false,
		"appropriate_complexity": true,
		"issues": ["hands the student a thesis"],
		"suggestions": ["replace the thesis with a question"]
	}`)

	v := parseValidation(raw)
	assert.False(t, v.IsEducationallySound)
	assert.True(t, v.ContainsAnswers)
	assert.Equal(t, []string{"hands the student a thesis"}, v.Issues)
}

func TestParseValidation_NonJSONFailsOpen(t *testing.T) {
	v := parseValidation(json.RawMessage(`the model rambled`))

	assert.True(t, v.IsEducationallySound)
	assert.True(t, v.ProvidesQuestions)
	assert.False(t, v.ContainsAnswers)
	assert.False(t, v.AlignsWithObjectives)
	assert.False(t, v.AppropriateComplexity)
	assert.Empty(t, v.Issues)
	assert.Empty(t, v.Suggestions)
}
