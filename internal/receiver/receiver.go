package receiver

import (
	"fmt"
	"io"
)

// Receiver содержит "бизнес-логику", к которой обращаются команды.
// Состояния не хранит; каждая операция только пишет в out.
type Receiver struct {
	out io.Writer
}

// New создает получателя, пишущего в out.
func New(out io.Writer) *Receiver {
	return &Receiver{out: out}
}

func (r *Receiver) DoSomething(a string) error {
	_, err := fmt.Fprintf(r.out, "Receiver: Working on (%s.)\n", a)
	return err
}

func (r *Receiver) DoSomethingElse(b string) error {
	_, err := fmt.Fprintf(r.out, "Receiver: Also working on (%s.)\n", b)
	return err
}
