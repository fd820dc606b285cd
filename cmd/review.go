package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Judge a mentoring response for educational soundness",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		svc, s, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		v := svc.ValidateResponse(context.Background(), string(text))

		fmt.Printf("Educationally sound:   %t\n", v.IsEducationallySound)
		fmt.Printf("Contains answers:      %t\n", v.ContainsAnswers)
		fmt.Printf("Provides questions:    %t\n", v.ProvidesQuestions)
		fmt.Printf("Aligns with objectives: %t\n", v.AlignsWithObjectives)
		fmt.Printf("Appropriate complexity: %t\n", v.AppropriateComplexity)
		for _, issue := range v.Issues {
			fmt.Printf("Issue: %s\n", issue)
		}
		for _, sug := range v.Suggestions {
			fmt.Printf("Suggestion: %s\n", sug)
		}
		return nil
	},
}
