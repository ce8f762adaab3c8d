package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blogem/forum-admin/database"
	"github.com/blogem/forum-admin/repositories"
	"github.com/blogem/forum-admin/services"
)

func newStatsCommand(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard counters",
		Long: `Stats prints the dashboard counters. The default format is a table
on a terminal and JSON otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := loadConfig(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			db, err := database.InitializeDatabase(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}
			defer db.Close()

			srvs := services.NewServices(repositories.NewRepositories(db), cfg.Admin, loc)
			data, err := srvs.Stats.GetDashboardData(cmd.Context())
			if err != nil {
				return fmt.Errorf("load stats: %w", err)
			}

			out := cmd.OutOrStdout()
			switch resolveFormat(format, out) {
			case "json":
				return printStatsJSON(out, data.Stats)
			case "table":
				return printStatsTable(out, data.Stats)
			default:
				return fmt.Errorf("invalid --format value %q (expected table or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: table or json (default: table on a terminal)")
	return cmd
}

// resolveFormat picks the output format, defaulting on whether out is a terminal
func resolveFormat(format string, out io.Writer) string {
	format = strings.TrimSpace(strings.ToLower(format))
	if format != "" {
		return format
	}
	if isTerminal(out) {
		return "table"
	}
	return "json"
}

func printStatsJSON(w io.Writer, stats services.DashboardStats) error {
	b, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printStatsTable(w io.Writer, stats services.DashboardStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	fmt.Fprintf(tw, "users\t%d\n", stats.TotalUsers)
	fmt.Fprintf(tw, "topics\t%d\n", stats.TotalTopics)
	fmt.Fprintf(tw, "posts\t%d\n", stats.TotalPosts)
	fmt.Fprintf(tw, "pending contacts\t%d\n", stats.PendingContacts)
	fmt.Fprintf(tw, "online users\t%d\n", stats.OnlineUsers)
	return tw.Flush()
}
