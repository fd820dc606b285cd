package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"inkmentor/internal/coach"
)

var askCmd = &cobra.Command{
	Use:   "ask [file]",
	Short: "Generate Socratic questions for a piece of writing",
	Long:  "Reads a content sample from the given file (or stdin) and prints questions to guide the writer.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, err := readInput(args)
		if err != nil {
			return err
		}

		stage, _ := cmd.Flags().GetString("stage")
		level, _ := cmd.Flags().GetString("level")
		objective, _ := cmd.Flags().GetString("objective")
		question, _ := cmd.Flags().GetString("question")
		student, _ := cmd.Flags().GetString("student")

		svc, s, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		set, err := svc.GenerateQuestions(context.Background(), coach.WritingContext{
			Stage:             coach.WritingStage(stage),
			AcademicLevel:     level,
			LearningObjective: objective,
			SpecificQuestion:  question,
			ContentSample:     string(sample),
			StudentID:         student,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Goal: %s\n\n", set.OverallGoal)
		for i, q := range set.Questions {
			fmt.Printf("%d. [%s] %s\n", i+1, q.Type, q.Question)
			for _, f := range q.FollowUpPrompts {
				fmt.Printf("   → %s\n", f)
			}
		}
		fmt.Printf("\nReflect: %s\n", set.ReflectionPrompt)
		for _, step := range set.NextStepSuggestions {
			fmt.Printf("Next: %s\n", step)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("stage", "drafting", "Writing stage: brainstorming, drafting, revising, editing")
	askCmd.Flags().String("level", "high_school", "Academic level")
	askCmd.Flags().String("objective", "", "Learning objective of the assignment")
	askCmd.Flags().String("question", "", "What the student asked for help with")
	askCmd.Flags().String("student", "", "Student ID for personalization (requires --profile-url)")
}

// readInput reads the content sample from the file argument, or stdin
// when no argument (or "-") is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
