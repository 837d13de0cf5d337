package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dparikh/prepdrill/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			var err error
			dbPath, err = store.DefaultDBPath()
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !force {
			fmt.Printf("This deletes %s and all recorded attempts. Re-run with --force to confirm.\n", dbPath)
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecar files, best effort.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		fmt.Println("Reset complete.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the database")
}
