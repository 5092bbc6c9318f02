package cli

import (
	"fmt"
	"strconv"

	"github.com/handiism/artic-table/internal/table"
	"github.com/spf13/cobra"
)

func newSelectCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "select N",
		Short: "Select the first N artworks of the catalog and print their IDs",
		Long: `select fetches pages one after another until N artworks are selected or the
catalog runs out, then prints the selected IDs in catalog order.

If a page fails to load, the IDs gathered before the failure are still
printed and the command exits with an error.`,
		Example: `  artic select 25
  artic select 100 --limit 48`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			if limit <= 0 {
				limit = a.settings.PageSize
			}

			stderr := cmd.ErrOrStderr()
			ctrl := table.NewController(a.fetcher(), limit, func(n table.Notification) {
				fmt.Fprintf(stderr, "%s: %s\n", n.Summary, n.Detail)
			})

			ctx := cmd.Context()
			if err := ctrl.Reload(ctx); err != nil {
				return err
			}

			res, ok := ctrl.SelectFirstN(ctx, n)
			if !ok {
				return nil
			}

			out := cmd.OutOrStdout()
			for _, id := range res.IDs {
				fmt.Fprintln(out, id)
			}

			if res.Err != nil {
				return fmt.Errorf("selection stopped after %d of %d: %w", len(res.IDs), n, res.Err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size used while scanning (default: page size setting)")

	return cmd
}
