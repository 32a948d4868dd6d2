package commands

import (
	"errors"
	"fmt"
	"io"
)

// ErrNilReceiver возвращается при создании ComplexCommand без получателя.
var ErrNilReceiver = errors.New("receiver is nil")

const complexHeader = "ComplexCommand: Las cosas complejas deben ser realizadas por un objeto receptor"

// Receiver выполняет реальную работу, которую делегирует ComplexCommand.
type Receiver interface {
	DoSomething(a string) error
	DoSomethingElse(b string) error
}

// ComplexCommand делегирует работу получателю. Получатель разделяемый:
// команда им не владеет.
type ComplexCommand struct {
	out      io.Writer
	receiver Receiver
	a, b     string
}

// NewComplexCommand связывает команду с получателем и двумя аргументами.
func NewComplexCommand(out io.Writer, r Receiver, a, b string) (*ComplexCommand, error) {
	if r == nil {
		return nil, fmt.Errorf("complex command: %w", ErrNilReceiver)
	}
	return &ComplexCommand{out: out, receiver: r, a: a, b: b}, nil
}

// Execute печатает заголовок, затем вызывает DoSomething(a) и DoSomethingElse(b)
// именно в таком порядке.
func (c *ComplexCommand) Execute() error {
	if _, err := fmt.Fprintln(c.out, complexHeader); err != nil {
		return err
	}
	if err := c.receiver.DoSomething(c.a); err != nil {
		return err
	}
	return c.receiver.DoSomethingElse(c.b)
}
