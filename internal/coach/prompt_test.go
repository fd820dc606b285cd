package coach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkmentor/internal/profile"
)

func testProfile() *profile.StudentLearningProfile {
	return &profile.StudentLearningProfile{
		Preferences: profile.Preferences{
			QuestionComplexity:     "concrete",
			AverageReflectionDepth: 40,
			BestRespondsTo:         []string{"examples", "open_questions"},
		},
		CurrentState: profile.CurrentState{
			CognitiveLoad:  "normal",
			EmotionalState: "engaged",
		},
		Strengths: map[string]int{
			"metacognition":    85,
			"evidenceAnalysis": 60,
			"organization":     72,
		},
		IndependenceMetrics: profile.IndependenceMetrics{Trend: "increasing"},
	}
}

func TestGuidanceFor_UnknownStageFallsBackToDrafting(t *testing.T) {
	assert.Equal(t, stageGuidance[StageDrafting], guidanceFor(WritingStage("outlining")))
	assert.Equal(t, stageGuidance[StageDrafting], guidanceFor(WritingStage("")))
	assert.Equal(t, stageGuidance[StageRevising], guidanceFor(StageRevising))
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, "generate_prompts", actionFor(StageBrainstorming))
	assert.Equal(t, actionFor(StageDrafting), actionFor(WritingStage("unknown")))
}

func TestBuildQuestionMessage_EmbedsContext(t *testing.T) {
	msg := buildQuestionMessage(WritingContext{
		Stage:             StageBrainstorming,
		AcademicLevel:     "undergraduate",
		LearningObjective: "argue a thesis",
		SpecificQuestion:  "Is my topic too broad?",
		ContentSample:     "Climate policy is complicated.",
	}, nil)

	assert.Contains(t, msg, "Writing stage: brainstorming")
	assert.Contains(t, msg, "Academic level: undergraduate")
	assert.Contains(t, msg, "Learning objective: argue a thesis")
	assert.Contains(t, msg, "Is my topic too broad?")
	assert.Contains(t, msg, "Climate policy is complicated.")
	assert.Contains(t, msg, stageGuidance[StageBrainstorming])
	assert.NotContains(t, msg, "Learner profile:")
}

func TestBuildQuestionMessage_AppendsProfileBlock(t *testing.T) {
	msg := buildQuestionMessage(WritingContext{
		Stage:         StageDrafting,
		ContentSample: "My draft.",
	}, testProfile())

	assert.Contains(t, msg, "Learner profile:")
	assert.Contains(t, msg, "Prefers concrete questions")
}

func TestBuildProfileBlock_Deterministic(t *testing.T) {
	p := testProfile()
	first := buildProfileBlock(p)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, buildProfileBlock(p))
	}
}

func TestBuildProfileBlock_StrugglingNoteThreshold(t *testing.T) {
	p := testProfile()

	p.CurrentState.StrugglingDuration = 10
	assert.NotContains(t, buildProfileBlock(p), "struggling")

	p.CurrentState.StrugglingDuration = 11
	assert.Contains(t, buildProfileBlock(p), "struggling for 11 minutes")
}

func TestBuildProfileBlock_BreakthroughNote(t *testing.T) {
	p := testProfile()
	assert.NotContains(t, buildProfileBlock(p), "breakthrough")

	p.CurrentState.RecentBreakthrough = true
	assert.Contains(t, buildProfileBlock(p), "breakthrough")
}

func TestBuildProfileBlock_StrengthsFiltered(t *testing.T) {
	block := buildProfileBlock(testProfile())

	// Above 70 listed, 60 filtered out.
	assert.Contains(t, block, "metacognition (85)")
	assert.Contains(t, block, "organization (72)")
	assert.NotContains(t, block, "evidenceAnalysis")
}

func TestBuildProfileBlock_Directives(t *testing.T) {
	p := testProfile()
	block := buildProfileBlock(p)
	assert.Contains(t, block, "concrete examples")
	assert.Contains(t, block, "let the student drive")

	p.CurrentState.CognitiveLoad = "overload"
	p.CurrentState.EmotionalState = "frustrated"
	p.IndependenceMetrics.Trend = "decreasing"
	block = buildProfileBlock(p)
	assert.Contains(t, block, "One idea per question")
	assert.Contains(t, block, "encouraging, low-pressure tone")
	assert.Contains(t, block, "more structure")
}

func TestBuildPerspectiveMessage_EnumeratesArguments(t *testing.T) {
	msg := buildPerspectiveMessage("school uniforms", []string{
		"They reduce bullying.",
		"They save money.",
	}, "persuasive essay")

	assert.Contains(t, msg, "Topic: school uniforms")
	assert.Contains(t, msg, "1. They reduce bullying.")
	assert.Contains(t, msg, "2. They save money.")
	assert.Contains(t, msg, "Context: persuasive essay")
}

func TestBuildPerspectiveMessage_NoArguments(t *testing.T) {
	msg := buildPerspectiveMessage("school uniforms", nil, "")
	assert.Contains(t, msg, "None yet.")
	assert.False(t, strings.Contains(msg, "Context:"))
}

func TestBuildValidationMessage_EmbedsResponse(t *testing.T) {
	msg := buildValidationMessage("Have you considered your audience?")
	assert.Contains(t, msg, "Have you considered your audience?")
	assert.Contains(t, msg, "is_educationally_sound")
}
