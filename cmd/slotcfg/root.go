package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AccelByte/extend-slot-config-common/pkg/config"
	"github.com/AccelByte/extend-slot-config-common/pkg/games"
	"github.com/AccelByte/extend-slot-config-common/pkg/registry"
)

// app carries the state shared by every subcommand.
type app struct {
	settings *viper.Viper
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{settings: newSettings()}

	rootCmd := &cobra.Command{
		Use:           "slotcfg",
		Short:         "Slot game config tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readSettingsFile(a.settings); err != nil {
				return err
			}
			logger, err := newLogger(a.settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
	flags.String("math-dir", "", "Directory holding games/<game_id>/game_config.yaml definitions")
	_ = a.settings.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = a.settings.BindPFlag(keyLogFormat, flags.Lookup("log-format"))
	_ = a.settings.BindPFlag(keyMathDir, flags.Lookup("math-dir"))

	rootCmd.AddCommand(
		a.newListCmd(),
		a.newValidateCmd(),
		a.newShowCmd(),
		a.newPublishCmd(),
	)

	return rootCmd
}

// newRegistry registers the built-in games plus every definition found under math_dir.
// A math_dir definition whose directory is named after a built-in game replaces it.
func (a *app) newRegistry() (*registry.InMemoryRegistry, error) {
	reg := registry.NewInMemoryRegistry(a.logger)

	loaders, err := a.mathDirLoaders()
	if err != nil {
		return nil, err
	}

	overridden := make([]string, 0, len(loaders))
	for _, id := range games.GameIDs() {
		if _, ok := loaders[id]; ok {
			a.logger.Info("Math dir definition replaces built-in game", "game_id", id)
			overridden = append(overridden, id)
		}
	}
	if err := games.RegisterAll(reg, a.logger, overridden...); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(loaders))
	for id := range loaders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := reg.Register(id, loaders[id].LoadConfig); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// mathDirLoaders returns a loader per game directory under the math dir that
// holds a definition file. It returns nothing when no math dir is set.
func (a *app) mathDirLoaders() (map[string]*config.ConfigLoader, error) {
	mathDir := a.settings.GetString(keyMathDir)
	if mathDir == "" {
		return nil, nil
	}

	paths := config.Paths{BaseDir: mathDir}
	entries, err := os.ReadDir(paths.GameDir(""))
	if err != nil {
		return nil, fmt.Errorf("failed to read math dir: %w", err)
	}

	loaders := make(map[string]*config.ConfigLoader)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		gameID := e.Name()
		definitionPath := paths.DefinitionPath(gameID)
		if _, err := os.Stat(definitionPath); errors.Is(err, fs.ErrNotExist) {
			a.logger.Debug("Skipping game directory without definition", "dir", paths.GameDir(gameID))
			continue
		}
		loaders[gameID] = config.NewConfigLoader(definitionPath, nil, a.logger)
	}
	return loaders, nil
}
