package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"monastery-guide/internal/domain"
	"monastery-guide/internal/usecase"
)

var insightCmd = &cobra.Command{
	Use:   "insight [monastery-id]",
	Short: "Generate the description, cultural and travel insights for a monastery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid monastery id %q", args[0])
		}
		a, err := buildApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		panel, err := a.insights.OpenPanel(cmd.Context(), id)
		if err != nil {
			return err
		}
		tabErr := loadTabs(cmd.Context(), panel)
		printTabs(cmd.OutOrStdout(), panel.Tabs())
		return tabErr
	},
}

// loadTabs fetches every tab concurrently. A failed tab does not cancel its
// siblings; the first failure is returned once all have finished.
func loadTabs(ctx context.Context, panel *usecase.InsightPanel) error {
	var g errgroup.Group
	for _, topic := range domain.Topics {
		g.Go(func() error {
			if tab := panel.Select(ctx, topic); !tab.Loaded {
				return fmt.Errorf("%s tab: %s", topic, tab.Error)
			}
			return nil
		})
	}
	return g.Wait()
}

func printTabs(out io.Writer, tabs []usecase.PanelTab) {
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	for _, tab := range tabs {
		fmt.Fprintln(out, heading.Render(string(tab.Topic)))
		if tab.Loaded {
			fmt.Fprintln(out, tab.HTML)
		} else {
			fmt.Fprintln(out, tab.Error)
		}
		fmt.Fprintln(out)
	}
}
