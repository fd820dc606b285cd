package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check connectivity to the model endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, s, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if !svc.HealthCheck(context.Background()) {
			return fmt.Errorf("model endpoint is not responding")
		}
		fmt.Println("ok")
		return nil
	},
}
