package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-issue-bridge/internal/adapter"
	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/spf13/cobra"
)

// remoteAdapter builds the bridge client from the merged configuration.
func remoteAdapter(env *cliEnv, opts *rootOptions) (adapter.ServerAdapter, error) {
	if err := opts.cfg.ValidateAdapter(); err != nil {
		return nil, err
	}
	return env.newAdapter(opts.cfg.Adapter, opts.logger)
}

func addQueryFlags(cmd *cobra.Command, q *models.IssueQuery) {
	flags := cmd.Flags()
	flags.StringVar(&q.MinSeverity, "min-severity", "", "lowest severity: high, medium, low, information")
	flags.StringVar(&q.MinConfidence, "min-confidence", "", "lowest confidence: certain, firm, tentative")
	flags.BoolVar(&q.InScopeOnly, "in-scope", false, "only issues inside the scanner's scope")
	flags.StringVar(&q.NameRegex, "name-regex", "", "case-insensitive pattern matched against issue names")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newHealthCmd(env *cliEnv, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show bridge status, version, issue and subscriber counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := remoteAdapter(env, opts)
			if err != nil {
				return err
			}

			health, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), health)
		},
	}
}

func newSyncCmd(env *cliEnv, opts *rootOptions) *cobra.Command {
	var (
		q     models.IssueQuery
		known []string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch issues; with --known only the difference is returned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := remoteAdapter(env, opts)
			if err != nil {
				return err
			}

			var diff models.SyncResponse
			if len(known) == 0 {
				diff, err = client.Issues(cmd.Context(), q)
			} else {
				diff, err = client.Sync(cmd.Context(), q, known)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), diff)
		},
	}
	addQueryFlags(cmd, &q)
	cmd.Flags().StringSliceVar(&known, "known", nil, "issue ids already held (comma separated)")

	return cmd
}

func newGetCmd(env *cliEnv, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one issue by id; filters do not apply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := remoteAdapter(env, opts)
			if err != nil {
				return err
			}

			issue, err := client.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), issue)
		},
	}
}

func newWatchCmd(env *cliEnv, opts *rootOptions) *cobra.Command {
	var q models.IssueQuery

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the push channel and print every change",
		Long: `watch mirrors the bridge locally: it runs a full sync, subscribes to the
push channel and re-runs the differential sync on every refresh, printing
the issues that appeared or went away. Interrupt to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := remoteAdapter(env, opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := &watcher{client: client, query: q, mirror: adapter.NewMirror(), out: cmd.OutOrStdout(), opts: opts}
			if err = w.resync(ctx); err != nil {
				return err
			}

			err = client.Watch(ctx, func() {
				if err := w.resync(ctx); err != nil {
					opts.logger.Warn().Err(err).Msg("resync after refresh failed")
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	addQueryFlags(cmd, &q)

	return cmd
}

// watcher keeps the local mirror in step with the bridge.
type watcher struct {
	client adapter.ServerAdapter
	query  models.IssueQuery
	mirror *adapter.Mirror
	out    io.Writer
	opts   *rootOptions
}

func (w *watcher) resync(ctx context.Context) error {
	diff, err := w.client.Sync(ctx, w.query, w.mirror.KnownIDs())
	if err != nil {
		return err
	}

	for _, id := range diff.RemovedIDs {
		fmt.Fprintf(w.out, "- %s\n", id)
	}
	for _, issue := range diff.NewIssues {
		fmt.Fprintf(w.out, "+ %s [%s/%s] %s %s\n", issue.ID, issue.Severity, issue.Confidence, issue.Name, issue.BaseURL)
	}

	added, removed := w.mirror.Apply(diff)
	w.opts.logger.Info().Int("added", added).Int("removed", removed).Int("total", w.mirror.Len()).Msg("synced")
	return nil
}
