package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dparikh/prepdrill/internal/app"
	"github.com/dparikh/prepdrill/internal/store"
	"github.com/dparikh/prepdrill/internal/topic"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an answered question",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		topicID, _ := cmd.Flags().GetString("topic")
		tierName, _ := cmd.Flags().GetString("tier")
		correct, _ := cmd.Flags().GetBool("correct")
		timeMs, _ := cmd.Flags().GetInt("time-ms")

		tier, err := topic.ParseTier(tierName)
		if err != nil {
			return err
		}

		a, err := buildApp(cmd, app.Options{})
		if err != nil {
			return err
		}
		defer closeApp(a)

		if _, err := a.Catalog.Get(topicID); err != nil {
			return err
		}

		err = a.Store.EventRepo().AppendAttempt(cmd.Context(), store.AttemptEventData{
			LearnerID: learner,
			Topic:     topicID,
			Tier:      string(tier),
			Correct:   correct,
			TimeMs:    timeMs,
		})
		if err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}

		fmt.Println("Recorded.")
		return nil
	},
}

func init() {
	recordCmd.Flags().String("learner", "", "Learner ID")
	recordCmd.Flags().String("topic", "", "Topic of the question")
	recordCmd.Flags().String("tier", "", "Difficulty tier (easy, medium, hard)")
	recordCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	recordCmd.Flags().Int("time-ms", 0, "Milliseconds spent answering")
	recordCmd.MarkFlagRequired("learner")
	recordCmd.MarkFlagRequired("topic")
	recordCmd.MarkFlagRequired("tier")
}
