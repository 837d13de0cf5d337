package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dparikh/prepdrill/internal/app"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic attempt statistics and proficiency",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")

		a, err := buildApp(cmd, app.Options{})
		if err != nil {
			return err
		}
		defer closeApp(a)

		stats, err := a.Store.EventRepo().LearnerTopicStats(cmd.Context(), learner)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No attempts recorded.")
			return nil
		}

		for _, st := range stats {
			est, err := a.Engine.Estimate(cmd.Context(), learner, st.Topic)
			if err != nil {
				return err
			}
			accuracy := float64(st.Correct) / float64(st.Attempts) * 100
			fmt.Printf("%-26s %3d attempts  %5.1f%% correct  avg %4.1fs  level %.1f\n",
				st.Topic, st.Attempts, accuracy, float64(st.AvgTimeMs)/1000, est.Level)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("learner", "", "Learner ID")
	statsCmd.MarkFlagRequired("learner")
}
