package app

import (
	"fmt"
	"io"

	"github.com/km-arc/go-dep/framework/container"
)

// Demo wires the services by hand against reg and exercises them, writing
// the email line and the greeting to w.
func Demo(w io.Writer, reg *container.Registry) error {
	if !container.Register[*EmailService](reg) {
		return fmt.Errorf("demo: %s already registered", "*EmailService")
	}
	container.NewHandle[*EmailService](reg).Get().SetOutput(w)

	if !container.Register[*Notifier](reg) {
		return fmt.Errorf("demo: %s already registered", "*Notifier")
	}
	notifier := container.NewHandle[*Notifier](reg)
	notifier.Get().Operate()

	// Subclassing: ask for the interface, get the registered implementation
	if !container.RegisterAs[Greeter, *FancyGreeter](reg) {
		return fmt.Errorf("demo: %s already registered", "Greeter")
	}
	greeter := container.NewHandle[Greeter](reg)
	_, err := fmt.Fprintln(w, greeter.Get().Greet())
	return err
}
