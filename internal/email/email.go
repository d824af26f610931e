package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/kafka"
)

type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

// Send writes a confirmation for package events. Other events are ignored.
func (s *Sender) Send(ctx context.Context, event kafka.PackageEvent) error {
	var subject string
	switch event.Type {
	case kafka.EventPackageCreated:
		subject = fmt.Sprintf("booking confirmed at %s", event.Accommodation)
	case kafka.EventLiftPassUpdated:
		subject = fmt.Sprintf("lift pass updated to %d days", event.LiftPassDays)
	case kafka.EventLessonsAdded:
		subject = "lessons added to your package"
	default:
		return nil
	}
	_, err := fmt.Fprintf(s.out, "send confirmation to customer %d (%s): %s, package %s, total %s\n",
		event.CustomerID, event.CustomerName, subject, event.PackageID, domain.Money(event.TotalCents))
	return err
}
