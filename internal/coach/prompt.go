package coach

import (
	"fmt"
	"sort"
	"strings"

	"inkmentor/internal/profile"
)

const questionSystemPrompt = `You are a writing mentor who teaches through questions, in the Socratic tradition.

Rules:
- Ask questions that make the student think about their own writing. Never write content for them and never give answers.
- Preserve academic integrity: no sentences, phrasings, theses, or arguments the student could paste into their work.
- Every question must include an educational rationale and the outcome you expect it to produce.
- Match question difficulty to the stated academic level.
- Keep questions specific to the student's content sample, not generic writing advice.
- Respond with JSON only, exactly in the requested shape. No prose before or after the JSON.`

const perspectiveSystemPrompt = `You are a writing mentor helping a student consider viewpoints they have not yet explored.

Rules:
- Suggest alternative perspectives on the student's topic, not counter-arguments written for them.
- For each perspective, give questions the student can use to explore it on their own. Never supply the answers.
- Explain the educational value of engaging with each perspective.
- Respond with JSON only, exactly in the requested shape.`

const validationSystemPrompt = `You are reviewing a writing mentor's response for educational soundness.

Judge whether the response teaches through questions rather than giving answers, whether it aligns with the learning objectives, and whether its complexity fits the student. Respond with JSON only, exactly in the requested shape.`

// stageGuidance maps each writing stage to the mentoring guidance embedded
// in the question prompt. Unknown stages use the drafting guidance.
var stageGuidance = map[WritingStage]string{
	StageBrainstorming: "The student is gathering ideas. Ask divergent, generative questions that open up the topic: what interests them, what they already know, what angles they have not considered. Avoid questions that narrow the topic prematurely.",
	StageDrafting:      "The student is producing a first draft. Ask questions about their main point, their audience, and the order of their ideas. Help them keep momentum; do not push polish or correctness yet.",
	StageRevising:      "The student is reworking a draft. Ask questions about structure, evidence, and whether each paragraph serves the thesis. Push them to find weak spots themselves.",
	StageEditing:       "The student is polishing. Ask questions that direct their attention to clarity, word choice, and consistency, one passage at a time. Never supply the corrected wording.",
}

// stageActions maps each writing stage to the action label reported on the
// generated question set.
var stageActions = map[WritingStage]string{
	StageBrainstorming: "generate_prompts",
	StageDrafting:      "analyze_draft",
	StageRevising:      "suggest_focus_areas",
	StageEditing:       "guide_polish",
}

// guidanceFor returns the stage guidance, defaulting to drafting for
// unknown stages.
func guidanceFor(stage WritingStage) string {
	if g, ok := stageGuidance[stage]; ok {
		return g
	}
	return stageGuidance[StageDrafting]
}

// actionFor returns the stage action label, defaulting to drafting for
// unknown stages.
func actionFor(stage WritingStage) string {
	if a, ok := stageActions[stage]; ok {
		return a
	}
	return stageActions[StageDrafting]
}

const questionJSONShape = `{
  "questions": [
    {
      "id": "q1",
      "type": "clarifying|expanding|challenging|perspective|reflection",
      "question": "...",
      "educational_rationale": "...",
      "expected_outcome": "...",
      "follow_up_prompts": ["..."]
    }
  ],
  "overall_educational_goal": "...",
  "reflection_prompt": "...",
  "next_step_suggestions": ["..."]
}`

// buildQuestionMessage constructs the user message for question
// generation. Pure: the same inputs always produce the same prompt.
func buildQuestionMessage(wctx WritingContext, prof *profile.StudentLearningProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Writing stage: %s\n", wctx.Stage)
	fmt.Fprintf(&b, "Academic level: %s\n", wctx.AcademicLevel)
	if wctx.LearningObjective != "" {
		fmt.Fprintf(&b, "Learning objective: %s\n", wctx.LearningObjective)
	}
	if wctx.SpecificQuestion != "" {
		fmt.Fprintf(&b, "The student asked: %s\n", wctx.SpecificQuestion)
	}

	b.WriteString("\nStage guidance:\n")
	b.WriteString(guidanceFor(wctx.Stage))
	b.WriteString("\n")

	b.WriteString("\nStudent's content sample:\n---\n")
	b.WriteString(wctx.ContentSample)
	b.WriteString("\n---\n")

	if prof != nil {
		b.WriteString("\n")
		b.WriteString(buildProfileBlock(prof))
	}

	b.WriteString("\nGenerate 3-5 questions. Respond with JSON in this shape:\n")
	b.WriteString(questionJSONShape)

	return b.String()
}

// buildProfileBlock renders the learner profile as deterministic prompt
// text. The block is guidance for the model only, never executable. The
// same profile always yields the same block.
func buildProfileBlock(p *profile.StudentLearningProfile) string {
	var b strings.Builder

	b.WriteString("Learner profile:\n")
	fmt.Fprintf(&b, "- Prefers %s questions; typical reflection depth %d words",
		p.Preferences.QuestionComplexity, p.Preferences.AverageReflectionDepth)
	if len(p.Preferences.BestRespondsTo) > 0 {
		fmt.Fprintf(&b, "; responds best to %s", strings.Join(p.Preferences.BestRespondsTo, ", "))
	}
	b.WriteString(".\n")

	fmt.Fprintf(&b, "- Current state: cognitive load %s, emotional state %s.\n",
		p.CurrentState.CognitiveLoad, p.CurrentState.EmotionalState)

	if p.CurrentState.StrugglingDuration > 10 {
		fmt.Fprintf(&b, "- The student has been struggling for %d minutes. Be gentle and scaffold heavily.\n",
			p.CurrentState.StrugglingDuration)
	}
	if p.CurrentState.RecentBreakthrough {
		b.WriteString("- The student just had a breakthrough. Reinforce their momentum.\n")
	}

	if line := strengthsLine(p.Strengths); line != "" {
		fmt.Fprintf(&b, "- Strengths to build on: %s.\n", line)
	}

	if directives := adaptationDirectives(p); len(directives) > 0 {
		b.WriteString("Adaptation directives:\n")
		for _, d := range directives {
			fmt.Fprintf(&b, "- %s\n", d)
		}
	}

	return b.String()
}

// strengthsLine formats skills scoring above the notable threshold,
// sorted by name so the block is deterministic.
func strengthsLine(strengths map[string]int) string {
	var names []string
	for skill, score := range strengths {
		if score > profile.StrengthNotable {
			names = append(names, skill)
		}
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, skill := range names {
		parts[i] = fmt.Sprintf("%s (%d)", skill, strengths[skill])
	}
	return strings.Join(parts, ", ")
}

// adaptationDirectives derives prompt directives from profile fields via
// fixed threshold and equality rules.
func adaptationDirectives(p *profile.StudentLearningProfile) []string {
	var out []string

	switch p.Preferences.QuestionComplexity {
	case "concrete":
		out = append(out, "Anchor questions in concrete examples and personal experience.")
	case "abstract":
		out = append(out, "Lean into conceptual and theoretical questions.")
	}

	if p.CurrentState.CognitiveLoad == "overload" {
		out = append(out, "Use short, simple questions. One idea per question.")
	}
	if p.CurrentState.EmotionalState == "frustrated" {
		out = append(out, "Use an encouraging, low-pressure tone.")
	}

	switch p.IndependenceMetrics.Trend {
	case "increasing":
		out = append(out, "Step back: let the student drive, offer minimal scaffolding.")
	case "decreasing":
		out = append(out, "Offer more structure and explicit next steps.")
	}

	return out
}

const perspectiveJSONShape = `{
  "perspectives": [
    {
      "id": "p1",
      "perspective": "...",
      "description": "...",
      "questions_to_explore": ["..."],
      "educational_value": "...",
      "resource_suggestions": ["..."]
    }
  ]
}`

// buildPerspectiveMessage constructs the user message for perspective
// generation. Arguments are enumerated 1-indexed.
func buildPerspectiveMessage(topic string, currentArguments []string, contextText string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)

	b.WriteString("\nArguments the student is already making:\n")
	if len(currentArguments) == 0 {
		b.WriteString("None yet.\n")
	}
	for i, arg := range currentArguments {
		fmt.Fprintf(&b, "%d. %s\n", i+1, arg)
	}

	if contextText != "" {
		fmt.Fprintf(&b, "\nContext: %s\n", contextText)
	}

	b.WriteString("\nSuggest 3-4 alternative perspectives the student has not considered, with questions to explore each. Respond with JSON in this shape:\n")
	b.WriteString(perspectiveJSONShape)

	return b.String()
}

// buildValidationMessage constructs the user message for the
// educational-soundness review of a prior response.
func buildValidationMessage(responseText string) string {
	var b strings.Builder

	b.WriteString("Review this mentoring response:\n---\n")
	b.WriteString(responseText)
	b.WriteString("\n---\n")
	b.WriteString("\nRespond with JSON: ")
	b.WriteString(`{"is_educationally_sound": bool, "contains_answers": bool, "provides_questions": bool, "aligns_with_learning_objectives": bool, "appropriate_complexity": bool, "issues": ["..."], "suggestions": ["..."]}`)

	return b.String()
}
