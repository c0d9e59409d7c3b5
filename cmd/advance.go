package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/config"
	"github.com/Dosada05/volei-torneio/services"
	"github.com/spf13/cobra"
)

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout

func advanceCmd(getConfig func() *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:       "advance groups|semifinals|finals",
		Short:     "Run one bracket progression step against the configured store",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"groups", "semifinals", "finals"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), getConfig(), logger, nil)
			if err != nil {
				return err
			}
			defer a.close()

			t, err := runAdvance(cmd.Context(), services.NewBracketService(a.tournament), args[0])
			if err != nil {
				return err
			}
			return printJSON(stdout, t)
		},
	}
}

func runAdvance(ctx context.Context, bracket services.BracketService, step string) (brackets.Transition, error) {
	switch step {
	case "groups":
		return bracket.GenerateGroups(ctx)
	case "semifinals":
		return bracket.AdvanceToSemifinals(ctx)
	case "finals":
		return bracket.AdvanceToFinals(ctx)
	default:
		return brackets.Transition{}, fmt.Errorf("unknown step %q", step)
	}
}

func standingsCmd(getConfig func() *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the standings of every group as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), getConfig(), logger, nil)
			if err != nil {
				return err
			}
			defer a.close()

			standings, err := services.NewBracketService(a.tournament).Standings(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(stdout, standings)
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
