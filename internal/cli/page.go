package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/handiism/artic-table/internal/model"
	"github.com/spf13/cobra"
)

func newPageCmd(a *app) *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Print one page of artworks",
		Example: `  artic page
  artic page --page 3 --limit 24`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				limit = a.settings.PageSize
			}

			p, err := a.fetcher().FetchPage(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderPage(p))
			fmt.Fprintf(out, "page %d/%d · %d per page · %d records\n", p.CurrentPage, p.TotalPages, p.Limit, p.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "1-based page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "rows per page (default: page size setting)")

	return cmd
}

func renderPage(p *model.Page) string {
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(append([]string{"ID"}, model.Columns...)...)

	for _, a := range p.Rows {
		t.Row(append([]string{strconv.Itoa(a.ID)}, a.Cells()...)...)
	}

	return t.Render()
}
