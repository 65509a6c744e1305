package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cireport/internal/config"
	"cireport/internal/errors"
	"cireport/internal/publish"
	"cireport/internal/suite"
)

type rootFlags struct {
	BuildID string
	Verdict string
	Config  string
	DSN     string
}

// deps are the collaborators a command line runs against.
type deps struct {
	registry *suite.Registry
	getenv   func(string) string
	// dial and now are passed through to publish.Options; nil means default.
	dial publish.DialFunc
	now  func() time.Time
	// openHistory defaults to the PostgreSQL store.
	openHistory func(ctx context.Context, dsn string) (historyStore, error)
}

func Execute() error {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	rootCmd := newRootCmd(deps{registry: suite.Default(), getenv: os.Getenv})
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	return rootCmd.ExecuteContext(context.Background())
}

func newRootCmd(d deps) *cobra.Command {
	var rf rootFlags
	rootCmd := &cobra.Command{
		Use:   "ci-report",
		Short: "Publish CI test reports to the Realtime Database",
		Long: `ci-report publishes the verdict of a CI test run, together with an HTML
page redirecting to the full report, under /workers/<worker>/reports.

The service account is read from ` + publish.CredentialsEnv + `.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.ArgumentError("a subcommand is required", nil)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&rf.BuildID, "build_id", "", "build ID (alias -id)")
	rootCmd.PersistentFlags().StringVar(&rf.Verdict, "verdict", "", "Test verdict")
	rootCmd.PersistentFlags().StringVar(&rf.Config, "config", "", "Path to ci-report YAML config (optional)")
	rootCmd.PersistentFlags().StringVar(&rf.DSN, "dsn", d.getenv(config.HistoryDSNEnv), "PostgreSQL DSN for publication history (defaults to "+config.HistoryDSNEnv+"; off when empty)")
	_ = rootCmd.MarkPersistentFlagRequired("build_id")
	_ = rootCmd.MarkPersistentFlagRequired("verdict")

	for _, s := range d.registry.All() {
		rootCmd.AddCommand(suiteCmd(s, &rf, d))
	}
	return rootCmd
}

// normalizeArgs rewrites the two-letter -id alias, which pflag cannot
// express as a shorthand, into --build_id.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		switch {
		case a == "-id":
			a = "--build_id"
		case strings.HasPrefix(a, "-id="):
			a = "--build_id=" + strings.TrimPrefix(a, "-id=")
		}
		out = append(out, a)
	}
	return out
}
