package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hooks/internal/app"
	"hooks/internal/config"
	"hooks/pkg/logger"
)

// New создает корневую CLI-команду. Без подкоманд она запускает сценарий.
func New(version string) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "hooks",
		Short:         "Демонстрация паттерна Command: Invoker с хуками до и после действия",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			lg := logger.New(cmd.ErrOrStderr(), cfg.Log.Level)

			a, err := app.NewApp(cfg, cmd.OutOrStdout(), lg)
			if err != nil {
				return err
			}
			return a.Run()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "путь к YAML-конфигу")

	root.AddCommand(newVersionCmd(version))
	root.AddCommand(newConfigCmd(&configPath))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}

func newConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Показать действующую конфигурацию",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
