package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

const (
	msgBeforeStart  = "Invoker: ¿Alguien quiere que se haga algo antes de comenzar?"
	msgImportant    = "Invoker: ...haciendo algo realmente importante..."
	msgBeforeFinish = "Invoker: ¿Alguien quiere que se haga algo después de que termine?"
)

// Invoker хранит два необязательных слота и запускает их вокруг собственного действия.
// Конкретные типы команд ему неизвестны.
type Invoker struct {
	out      io.Writer
	log      *slog.Logger
	onStart  Command
	onFinish Command
}

// NewInvoker создает Invoker с пустыми слотами. nil-логгер отбрасывает записи.
func NewInvoker(out io.Writer, lg *slog.Logger) *Invoker {
	if lg == nil {
		lg = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Invoker{out: out, log: lg}
}

// SetOnStart перезаписывает слот on-start; nil очищает слот.
func (i *Invoker) SetOnStart(cmd Command) {
	i.onStart = cmd
}

// SetOnFinish перезаписывает слот on-finish; nil очищает слот.
func (i *Invoker) SetOnFinish(cmd Command) {
	i.onFinish = cmd
}

// Trigger выполняет on-start, собственное действие и on-finish строго по порядку.
// Первая ошибка прерывает последовательность.
func (i *Invoker) Trigger() error {
	lg := i.log.With("run_id", uuid.NewString())

	if err := i.println(msgBeforeStart); err != nil {
		return err
	}
	if err := i.runSlot(lg, "on_start", i.onStart); err != nil {
		return err
	}
	if err := i.println(msgImportant); err != nil {
		return err
	}
	if err := i.println(msgBeforeFinish); err != nil {
		return err
	}
	return i.runSlot(lg, "on_finish", i.onFinish)
}

func (i *Invoker) runSlot(lg *slog.Logger, slot string, cmd Command) error {
	if cmd == nil {
		lg.Debug("slot skipped", "slot", slot)
		return nil
	}
	if err := cmd.Execute(); err != nil {
		lg.Debug("slot failed", "slot", slot, "err", err)
		return err
	}
	lg.Debug("slot executed", "slot", slot, "command", fmt.Sprintf("%T", cmd))
	return nil
}

func (i *Invoker) println(msg string) error {
	_, err := fmt.Fprintln(i.out, msg)
	return err
}
