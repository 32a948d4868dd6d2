package app

import (
	"fmt"
	"io"
	"log/slog"

	"hooks/internal/commands"
	"hooks/internal/config"
	"hooks/internal/core"
	"hooks/internal/receiver"
)

// App агрегирует участников сценария.
type App struct {
	Receiver *receiver.Receiver
	Invoker  *core.Invoker
	Config   config.Config
}

// NewApp строит эталонный сценарий: получатель, две команды и Invoker с заполненными слотами.
func NewApp(cfg config.Config, out io.Writer, lg *slog.Logger) (*App, error) {
	r := receiver.New(out)
	simple := commands.NewSimpleCommand(out, cfg.Scenario.StartPayload)
	complexCmd, err := commands.NewComplexCommand(out, r, cfg.Scenario.FirstTask, cfg.Scenario.SecondTask)
	if err != nil {
		return nil, fmt.Errorf("build complex command: %w", err)
	}

	inv := core.NewInvoker(out, lg)
	inv.SetOnStart(simple)
	inv.SetOnFinish(complexCmd)

	return &App{
		Receiver: r,
		Invoker:  inv,
		Config:   cfg,
	}, nil
}

// Run запускает Invoker один раз.
func (a *App) Run() error {
	return a.Invoker.Trigger()
}
