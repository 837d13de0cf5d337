package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dparikh/prepdrill/internal/app"
	"github.com/dparikh/prepdrill/internal/store"
	"github.com/dparikh/prepdrill/internal/topic"
)

// seedEntry is the JSON shape of one question bank entry. Active defaults
// to true when omitted.
type seedEntry struct {
	ID     string   `json:"id"`
	Topic  string   `json:"topic"`
	Tier   string   `json:"tier"`
	Tags   []string `json:"tags,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

var seedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Load question bank entries from a JSON file",
	Long: "Loads question bank entries from a JSON array of objects with id, topic,\n" +
		"tier, optional tags, and optional active fields. Existing IDs are replaced.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}

		var entries []seedEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}

		a, err := buildApp(cmd, app.Options{})
		if err != nil {
			return err
		}
		defer closeApp(a)

		items := make([]store.QuestionItemData, 0, len(entries))
		for i, e := range entries {
			if e.ID == "" {
				return fmt.Errorf("seed entry %d: missing id", i)
			}
			if !a.Catalog.Contains(e.Topic) {
				return fmt.Errorf("seed entry %s: unknown topic %q", e.ID, e.Topic)
			}
			if !topic.Tier(e.Tier).Valid() {
				return fmt.Errorf("seed entry %s: unknown tier %q", e.ID, e.Tier)
			}
			active := true
			if e.Active != nil {
				active = *e.Active
			}
			items = append(items, store.QuestionItemData{
				ItemID: e.ID,
				Topic:  e.Topic,
				Tier:   e.Tier,
				Tags:   e.Tags,
				Active: active,
			})
		}

		n, err := a.Store.ItemRepo().UpsertItems(cmd.Context(), items)
		if err != nil {
			return fmt.Errorf("seed items: %w", err)
		}

		fmt.Printf("Loaded %d question(s).\n", n)
		return nil
	},
}
