package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local state (workspaces, accounts, event log)",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("This deletes %s and all saved workspaces. Continue? [y/N] ", dbPath)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		// WAL sidecars go with the database file.
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}

		fmt.Println("Local state deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
