package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dparikh/prepdrill/internal/app"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [topic ...]",
	Short: "Rank topics by study priority",
	Long: "Ranks topics for a learner: topics needing work come first (weakest and\n" +
		"never-attempted ahead), the rest follow in ascending proficiency. With no\n" +
		"arguments the whole catalog is ranked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")

		a, err := buildApp(cmd, app.Options{})
		if err != nil {
			return err
		}
		defer closeApp(a)

		priorities, err := a.Engine.PrioritizeTopics(cmd.Context(), learner, args)
		if err != nil {
			return err
		}

		for _, p := range priorities {
			marker := "  "
			if p.NeedsWork {
				marker = "! "
			}
			fmt.Printf("%2d. %s%-26s proficiency %.1f\n", p.Rank, marker, p.Topic, p.Proficiency)
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("learner", "", "Learner ID")
	topicsCmd.MarkFlagRequired("learner")
}
