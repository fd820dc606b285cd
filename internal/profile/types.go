// Package profile defines the learner-profile shape consumed by the coach
// and the client for the external profile-builder service.
package profile

// StudentLearningProfile is a derived summary of a student's preferences,
// current state, and skill strengths, built per request by an external
// service. It is read-only to this subsystem.
type StudentLearningProfile struct {
	Preferences         Preferences         `json:"preferences"`
	CurrentState        CurrentState        `json:"currentState"`
	Strengths           map[string]int      `json:"strengths"`
	IndependenceMetrics IndependenceMetrics `json:"independenceMetrics"`
}

// Preferences captures how the student likes to be questioned.
type Preferences struct {
	// QuestionComplexity is "concrete" or "abstract".
	QuestionComplexity string `json:"questionComplexity"`

	// AverageReflectionDepth is the typical word count of the student's
	// reflective answers.
	AverageReflectionDepth int `json:"averageReflectionDepth"`

	// BestRespondsTo lists question styles that have worked well,
	// e.g. "examples", "analogies", "open_questions".
	BestRespondsTo []string `json:"bestRespondsTo"`
}

// CurrentState captures the student's state in the active session.
type CurrentState struct {
	// CognitiveLoad is "low", "normal", or "overload".
	CognitiveLoad string `json:"cognitiveLoad"`

	// EmotionalState is "engaged", "neutral", or "frustrated".
	EmotionalState string `json:"emotionalState"`

	// StrugglingDuration is how long the student has been stuck on the
	// current task, in minutes.
	StrugglingDuration int `json:"strugglingDuration"`

	// RecentBreakthrough is set when the student just worked through a
	// difficulty on their own.
	RecentBreakthrough bool `json:"recentBreakthrough"`
}

// IndependenceMetrics summarizes how much scaffolding the student needs.
type IndependenceMetrics struct {
	// Trend is "increasing", "stable", or "decreasing".
	Trend string `json:"trend"`
}

// Strength score thresholds used across prompt building and adaptation.
const (
	// StrengthNotable is the floor above which a skill is worth
	// mentioning in the prompt.
	StrengthNotable = 70

	// StrengthHigh is the floor above which adaptation rules lean on a
	// skill.
	StrengthHigh = 80
)
