package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mailersend/mailersend-go"
	"go.uber.org/zap"
)

type MailerSendSender struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSendSender(client *mailersend.Mailersend, fromName, fromEmail string) *MailerSendSender {
	return &MailerSendSender{
		client: client,
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
}

func (s *MailerSendSender) Send(ctx context.Context, msg Message) error {
	message := s.client.Email.NewMessage()
	message.SetFrom(s.from)
	message.SetRecipients([]mailersend.Recipient{{Email: msg.Recipient}})
	message.SetSubject(msg.Subject)
	message.SetHTML(msg.HTMLBody)

	if msg.AttachmentPath != "" {
		content, err := os.ReadFile(msg.AttachmentPath)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		message.AddAttachment(mailersend.Attachment{
			Filename: filepath.Base(msg.AttachmentPath),
			Content:  base64.StdEncoding.EncodeToString(content),
		})
	}

	res, err := s.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	zap.L().Info("email sent",
		zap.String("message_id", msg.ID),
		zap.String("recipient", msg.Recipient),
		zap.String("provider_id", res.Header.Get("X-Message-Id")),
	)
	return nil
}

// LogSender writes mail to the log instead of delivering it.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	zap.L().Info("email not delivered, no mail provider configured",
		zap.String("message_id", msg.ID),
		zap.String("recipient", msg.Recipient),
		zap.String("subject", msg.Subject),
		zap.String("attachment", msg.AttachmentPath),
	)
	return nil
}

// DirectDispatcher sends mail synchronously in the caller's goroutine.
type DirectDispatcher struct {
	sender Sender
}

func NewDirectDispatcher(sender Sender) *DirectDispatcher {
	return &DirectDispatcher{sender: sender}
}

func (d *DirectDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if err := d.sender.Send(ctx, msg); err != nil {
		zap.L().Error("can't send email", zap.String("message_id", msg.ID), zap.Error(err))
		return err
	}
	return nil
}
