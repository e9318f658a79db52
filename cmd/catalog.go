package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"monastery-guide/internal/catalog"
	"monastery-guide/internal/domain"
)

var (
	catalogQuery string
	catalogSort  string
	catalogPages int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List monasteries from the built-in catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		order := catalog.SortOrder(catalogSort)
		if !order.Valid() {
			return fmt.Errorf("unknown sort order %q", catalogSort)
		}
		c := catalog.New()

		var entries []domain.Monastery
		if catalogQuery != "" || order != catalog.SortDefault {
			entries = c.Query(catalogQuery, order)
		} else {
			listing := c.NewListing()
			entries = listing.Visible()
			for i := 1; i < catalogPages; i++ {
				entries = listing.LoadMore()
			}
		}
		printMonasteries(cmd.OutOrStdout(), entries)
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogQuery, "query", "q", "", "filter by name, location or description")
	catalogCmd.Flags().StringVar(&catalogSort, "sort", "", "order by founding year: newest or oldest")
	catalogCmd.Flags().IntVar(&catalogPages, "pages", 1, "pages of three cards to show")
}

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	metaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printMonasteries(w io.Writer, entries []domain.Monastery) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No monasteries found.")
		return
	}
	for _, m := range entries {
		fmt.Fprintf(w, "%s %s\n", nameStyle.Render(fmt.Sprintf("[%d] %s", m.ID, m.Name)), metaStyle.Render(yearLabel(m)))
		fmt.Fprintf(w, "    %s\n", m.Description)
	}
}

func yearLabel(m domain.Monastery) string {
	if m.Year == 0 {
		return m.Location
	}
	return fmt.Sprintf("%s, founded %d", m.Location, m.Year)
}
