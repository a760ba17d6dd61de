package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-slot-config-common/pkg/config"
	"github.com/AccelByte/extend-slot-config-common/pkg/db"
	"github.com/AccelByte/extend-slot-config-common/pkg/publish"
	"github.com/AccelByte/extend-slot-config-common/pkg/repository"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.newRegistry()
			if err != nil {
				return err
			}
			for _, id := range reg.GameIDs() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func (a *app) newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate [game_id...]",
		Short: "Build and validate games (all registered games when none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if len(args) > 0 {
					return fmt.Errorf("--file cannot be combined with game IDs")
				}
				cfg, err := config.NewConfigLoader(file, nil, a.logger).LoadConfig()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tok\n", cfg.GameID)
				return nil
			}

			reg, err := a.newRegistry()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = reg.GameIDs()
			}

			failed := 0
			for _, id := range args {
				if _, err := reg.Get(id); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tFAIL\t%v\n", id, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tok\n", id)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d games failed validation", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Validate a single game_config.yaml instead of registered games")

	return cmd
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game_id>",
		Short: "Print a JSON summary of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.newRegistry()
			if err != nil {
				return err
			}
			cfg, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			summary, err := summarize(cfg)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
}

func (a *app) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [game_id...]",
		Short: "Store config snapshots in PostgreSQL (settings from DB_* env vars)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			reg, err := a.newRegistry()
			if err != nil {
				return err
			}

			repo, closeRepo, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			results, err := publish.NewPublisher(reg, repo, clockwork.NewRealClock(), a.logger).Publish(ctx, args...)
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tinserted=%t\n", r.GameID, r.Version, r.Inserted)
			}
			return err
		},
	}
	cmd.Flags().Bool("dry-run", false, "Encode snapshots without connecting to a database")
	_ = a.settings.BindPFlag(keyDryRun, cmd.Flags().Lookup("dry-run"))

	return cmd
}

// openRepository returns the snapshot store for publish and a function releasing it.
func (a *app) openRepository(ctx context.Context) (repository.SnapshotRepository, func(), error) {
	if a.settings.GetBool(keyDryRun) {
		return repository.NewInMemorySnapshotRepository(), func() {}, nil
	}

	conn, err := db.Connect(db.NewConfigFromEnv())
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewPostgresSnapshotRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return repo, func() { _ = conn.Close() }, nil
}
