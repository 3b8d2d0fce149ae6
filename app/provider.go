package app

import (
	"io"

	"github.com/km-arc/go-dep/framework/container"
)

// AppServiceProvider registers the example application's services.
//
// Registered types:
//   - *EmailService
//   - *Notifier (needs *EmailService)
//   - Greeter => *FancyGreeter
type AppServiceProvider struct {
	container.BaseProvider

	// Out receives sent emails; nil keeps them in memory only.
	Out io.Writer
}

func (p *AppServiceProvider) Register(reg *container.Registry) error {
	// EmailService first: Notifier resolves it while being constructed
	if err := container.Add[*EmailService, *EmailService](reg); err != nil {
		return err
	}
	if err := container.Add[*Notifier, *Notifier](reg); err != nil {
		return err
	}
	return container.Add[Greeter, *FancyGreeter](reg)
}

func (p *AppServiceProvider) Boot(reg *container.Registry) error {
	if p.Out == nil {
		return nil
	}
	emails, err := container.Lookup[*EmailService](reg)
	if err != nil {
		return err
	}
	emails.SetOutput(p.Out)
	return nil
}
