package cli

import (
	"context"

	"github.com/handiism/artic-table/internal/metrics"
	"github.com/handiism/artic-table/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "browse",
		Short:       "Open the interactive artwork table",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE:        a.runBrowse,
	}
}

// runBrowse runs the TUI and, when configured, the metrics listener. The
// listener stops when the TUI exits.
func (a *app) runBrowse(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return tui.Run(ctx, a.settings, a.fetcher())
	})

	if addr := a.settings.MetricsAddr; addr != "" {
		g.Go(func() error {
			return metrics.Serve(ctx, addr)
		})
	}

	return g.Wait()
}
