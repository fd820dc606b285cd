// Package coach generates Socratic writing questions, alternative
// perspectives, and educational-soundness reviews for student writing. It
// builds prompts from the writing context, sends them through the LLM
// provider, and defensively parses the response into typed results.
package coach

// WritingStage is the phase of the writing process the student is in.
// It selects the guidance embedded in prompts and the action reported on
// generated question sets.
type WritingStage string

const (
	StageBrainstorming WritingStage = "brainstorming"
	StageDrafting      WritingStage = "drafting"
	StageRevising      WritingStage = "revising"
	StageEditing       WritingStage = "editing"
)

// QuestionType classifies the pedagogical intent of a question.
type QuestionType string

const (
	TypeClarifying  QuestionType = "clarifying"
	TypeExpanding   QuestionType = "expanding"
	TypeChallenging QuestionType = "challenging"
	TypePerspective QuestionType = "perspective"
	TypeReflection  QuestionType = "reflection"
)

// WritingContext describes the student's current writing task.
// Caller-owned and immutable; the coach never modifies it.
type WritingContext struct {
	// Stage is the current writing stage. Unknown values fall back to
	// drafting guidance.
	Stage WritingStage

	// AcademicLevel is e.g. "middle_school", "high_school", "undergraduate".
	AcademicLevel string

	// SpecificQuestion is what the student asked for help with, if anything.
	SpecificQuestion string

	// LearningObjective is the assignment's stated learning goal.
	LearningObjective string

	// ContentSample is the student's own writing, embedded verbatim in
	// the prompt.
	ContentSample string

	// StudentID, when set, triggers a profile lookup so generated
	// questions can be personalized. Optional.
	StudentID string
}

// Question is a single Socratic question for the student.
type Question struct {
	ID              string       `json:"id"`
	Type            QuestionType `json:"type"`
	Question        string       `json:"question"`
	Rationale       string       `json:"educational_rationale"`
	ExpectedOutcome string       `json:"expected_outcome"`
	FollowUpPrompts []string     `json:"follow_up_prompts"`
}

// QuestionSet is the terminal output of question generation. Owned by the
// caller after return.
type QuestionSet struct {
	// RequestID uniquely identifies this generation call.
	RequestID string `json:"request_id"`

	// Action is the stage-mapped action label, e.g. "generate_prompts"
	// for brainstorming.
	Action string `json:"action"`

	Questions           []Question `json:"questions"`
	OverallGoal         string     `json:"overall_educational_goal"`
	ReflectionPrompt    string     `json:"reflection_prompt"`
	NextStepSuggestions []string   `json:"next_step_suggestions"`
}

// Perspective suggests an alternative viewpoint for the student to explore.
type Perspective struct {
	ID                  string   `json:"id"`
	Perspective         string   `json:"perspective"`
	Description         string   `json:"description"`
	QuestionsToExplore  []string `json:"questions_to_explore"`
	EducationalValue    string   `json:"educational_value"`
	ResourceSuggestions []string `json:"resource_suggestions"`
}

// ValidationResult is the educational-soundness judgement of a prior
// response.
type ValidationResult struct {
	IsEducationallySound  bool     `json:"is_educationally_sound"`
	ContainsAnswers       bool     `json:"contains_answers"`
	ProvidesQuestions     bool     `json:"provides_questions"`
	AlignsWithObjectives  bool     `json:"aligns_with_learning_objectives"`
	AppropriateComplexity bool     `json:"appropriate_complexity"`
	Issues                []string `json:"issues"`
	Suggestions           []string `json:"suggestions"`
}
