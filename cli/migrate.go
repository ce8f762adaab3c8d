package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogem/forum-admin/database"
)

func newMigrateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			db, err := database.InitializeDatabase(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Database %s is up to date\n", cfg.DatabasePath)
			return nil
		},
	}
}
