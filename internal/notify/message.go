// Package notify delivers HTML mail, either through a RabbitMQ queue drained
// by a Consumer or directly through a Sender.
package notify

import (
	"context"

	"github.com/google/uuid"
)

type Message struct {
	ID             string `json:"id"`
	Subject        string `json:"subject"`
	Recipient      string `json:"recipient"`
	HTMLBody       string `json:"html_body"`
	AttachmentPath string `json:"attachment_path,omitempty"`
}

func NewMessage(subject, recipient, htmlBody, attachmentPath string) Message {
	return Message{
		ID:             uuid.NewString(),
		Subject:        subject,
		Recipient:      recipient,
		HTMLBody:       htmlBody,
		AttachmentPath: attachmentPath,
	}
}

//go:generate mockgen -source=message.go -destination=mock_message.go -package=notify
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
