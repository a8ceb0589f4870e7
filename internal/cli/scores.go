package cli

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "High-score commands",
	}

	cmd.AddCommand(newScoresSubmitCmd())
	cmd.AddCommand(newScoresListCmd())
	cmd.AddCommand(newScoresGetCmd())
	cmd.AddCommand(newScoresDeleteCmd())

	return cmd
}

func newScoresSubmitCmd() *cobra.Command {
	var level, handle, timestamp string
	var score float64

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a high score (requires login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if timestamp == "" {
				timestamp = time.Now().UTC().Format(time.RFC3339)
			}

			req := map[string]any{
				"level":     level,
				"score":     score,
				"timestamp": timestamp,
			}
			// Left out, the server records the score under the
			// logged-in handle
			if handle != "" {
				req["userHandle"] = handle
			}
			var result SubmitResult

			if err := client.Post("/high-scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "Level name (required)")
	cmd.Flags().StringVar(&handle, "handle", "", "Owning handle (default: the logged-in handle)")
	cmd.Flags().Float64Var(&score, "score", 0, "Score value (required)")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "Submission timestamp (default: now)")
	_ = cmd.MarkFlagRequired("level")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newScoresListCmd() *cobra.Command {
	var level string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List high scores, ranked highest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if level != "" {
				query.Set("level", level)
			}
			if page > 1 {
				query.Set("page", fmt.Sprintf("%d", page))
			}

			path := "/high-scores"
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var result []Score
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "Filter by level")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")

	return cmd
}

func newScoresGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a single score by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Score
			if err := client.Get("/high-scores/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScoresDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an owned score (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult
			if err := client.Delete("/high-scores/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
