package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dparikh/prepdrill/internal/app"
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Build an adaptive practice sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		topicID, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		adaptive, _ := cmd.Flags().GetBool("adaptive")
		seed, _ := cmd.Flags().GetInt64("seed")

		a, err := buildApp(cmd, app.Options{Seed: seed})
		if err != nil {
			return err
		}
		defer closeApp(a)

		seq, err := a.Engine.BuildSequence(cmd.Context(), learner, topicID, count, adaptive)
		if err != nil {
			return err
		}

		if len(seq.Items) == 0 {
			fmt.Println(seq.Reason)
			return nil
		}

		fmt.Printf("Sequence %s — topic %s, estimated level %.1f\n", seq.PassID, seq.Topic, seq.Level)
		for i, it := range seq.Items {
			fmt.Printf("%2d. %-12s %-7s difficulty %.1f  confidence %.2f  %s\n",
				i+1, it.Item.ID, it.Item.Tier, it.ExpectedDifficulty, it.SelectionConfidence, it.Rationale)
		}
		return nil
	},
}

func init() {
	sequenceCmd.Flags().String("learner", "", "Learner ID")
	sequenceCmd.Flags().String("topic", "", "Topic to practice")
	sequenceCmd.Flags().Int("count", 10, "Number of questions to sequence")
	sequenceCmd.Flags().Bool("adaptive", true, "Adjust the difficulty target while building")
	sequenceCmd.Flags().Int64("seed", 0, "Fixed seed for the pacing simulation (0 = vary per run)")
	sequenceCmd.MarkFlagRequired("learner")
	sequenceCmd.MarkFlagRequired("topic")
}
