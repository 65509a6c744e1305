package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cireport/internal/config"
	"cireport/internal/rtdb"
	"cireport/internal/suite"
)

func suiteCmd(s suite.Suite, rf *rootFlags, d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   s.Name,
		Short: s.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past parsing: failures from here on are not usage errors.
			cmd.SilenceUsage = true

			cfg, err := config.Load(rf.Config)
			if err != nil {
				return err
			}
			dsn := rf.DSN
			if dsn == "" {
				dsn = cfg.HistoryDSN
			}

			inv := suite.Invocation{
				Command: s.Name,
				BuildID: rf.BuildID,
				Verdict: rf.Verdict,
				Args:    make(map[string]string, len(s.Flags)),
			}
			for _, f := range s.Flags {
				v, err := cmd.Flags().GetString(f.Name)
				if err != nil {
					return err
				}
				inv.Args[f.Name] = v
			}

			pub := &envPublisher{cfg: cfg, dsn: dsn, d: d, errOut: cmd.ErrOrStderr()}
			if err := s.Run(cmd.Context(), cmd.OutOrStdout(), inv, pub); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: build %s published to %s\n", inv.BuildID, rtdb.ReportsPath(s.WorkerID))
			return nil
		},
	}
	for _, f := range s.Flags {
		cmd.Flags().String(f.Name, "", f.Usage)
		if f.Required {
			_ = cmd.MarkFlagRequired(f.Name)
		}
	}
	return cmd
}
