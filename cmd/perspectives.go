package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var perspectivesCmd = &cobra.Command{
	Use:   "perspectives <topic>",
	Short: "Suggest alternative perspectives on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arguments, _ := cmd.Flags().GetStringArray("argument")
		contextText, _ := cmd.Flags().GetString("context")

		svc, s, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		perspectives, err := svc.GeneratePerspectives(context.Background(), args[0], arguments, contextText)
		if err != nil {
			return err
		}

		for _, p := range perspectives {
			fmt.Printf("%s — %s\n", p.ID, p.Perspective)
			fmt.Printf("  %s\n", p.Description)
			for _, q := range p.QuestionsToExplore {
				fmt.Printf("  ? %s\n", q)
			}
			fmt.Printf("  Why: %s\n\n", p.EducationalValue)
		}
		return nil
	},
}

func init() {
	perspectivesCmd.Flags().StringArray("argument", nil, "An argument the student is already making (repeatable)")
	perspectivesCmd.Flags().String("context", "", "Additional context about the assignment")
}
