package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/airport/internal/kafka"
)

// Sender renders order confirmations. Delivery is a write to out.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	if event.Email == "" {
		return nil
	}
	_, err := fmt.Fprintf(s.out, "send email to %s: order #%d confirmed with %d ticket(s)\n",
		event.Email, event.OrderID, len(event.Tickets))
	return err
}
