package app

import (
	"fmt"
	"io"
	"sync"

	"github.com/km-arc/go-dep/framework/container"
)

// ── EmailService ──────────────────────────────────────────────────────────────

// EmailService "sends" mail by writing one line per message. The zero value
// is ready to use and writes nowhere until SetOutput is called.
type EmailService struct {
	mu   sync.Mutex
	out  io.Writer
	sent []string
}

// SetOutput directs sent messages to w.
func (s *EmailService) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = w
}

// SendEmail records the message and returns the line that was written.
func (s *EmailService) SendEmail(address, message string) string {
	line := fmt.Sprintf("$SEND_EMAIL [ADDR=%s] -> %s", address, message)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, line)
	if s.out != nil {
		fmt.Fprintln(s.out, line)
	}
	return line
}

// Sent returns a copy of every line sent so far.
func (s *EmailService) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

// ── Notifier ──────────────────────────────────────────────────────────────────

// Notifier sends notifications through the registered EmailService.
type Notifier struct {
	// resolved when the registry constructs the Notifier
	emails container.Handle[*EmailService]
}

// Operate sends the canned notification.
func (n *Notifier) Operate() string {
	return n.Notify("Author", "a cool library message")
}

// Notify sends message to address.
func (n *Notifier) Notify(address, message string) string {
	return n.emails.Get().SendEmail(address, message)
}

// ── Greeter ───────────────────────────────────────────────────────────────────

// Greeter is requested by interface; which implementation answers depends on
// what was registered.
type Greeter interface {
	Greet() string
}

type BaseGreeter struct{}

func (*BaseGreeter) Greet() string { return "test base" }

type FancyGreeter struct{ BaseGreeter }

func (*FancyGreeter) Greet() string { return "test impl!" }
