package commands

import (
	"fmt"
	"io"
)

// SimpleCommand печатает свою полезную нагрузку без участия получателя.
type SimpleCommand struct {
	out     io.Writer
	payload string
}

// NewSimpleCommand фиксирует payload в момент создания; пустая строка допустима.
func NewSimpleCommand(out io.Writer, payload string) *SimpleCommand {
	return &SimpleCommand{out: out, payload: payload}
}

func (c *SimpleCommand) Execute() error {
	_, err := fmt.Fprintf(c.out, "SimpleCommand: Mira, puedo hacer cosas simples como imprimir (%s)\n", c.payload)
	return err
}
