package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mailersend/mailersend-go"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type ackRecord struct {
	acked   bool
	nacked  bool
	requeue bool
}

type fakeAcknowledger struct {
	mu      sync.Mutex
	records map[uint64]*ackRecord
}

func newFakeAcknowledger() *fakeAcknowledger {
	return &fakeAcknowledger{records: map[uint64]*ackRecord{}}
}

func (f *fakeAcknowledger) record(tag uint64) *ackRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[tag]
	if !ok {
		r = &ackRecord{}
		f.records[tag] = r
	}
	return r
}

func (f *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	f.record(tag).acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	r := f.record(tag)
	r.nacked = true
	r.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func delivery(ack amqp.Acknowledger, tag uint64, body []byte, redelivered bool) amqp.Delivery {
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: tag, Body: body, Redelivered: redelivered}
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("Monthly report", "alice@example.com", "<p>hi</p>", "/tmp/report.html")
	other := NewMessage("Monthly report", "alice@example.com", "<p>hi</p>", "")

	assert.NotEmpty(t, msg.ID)
	assert.NotEqual(t, msg.ID, other.ID)
	assert.Equal(t, "/tmp/report.html", msg.AttachmentPath)
}

func TestBroker_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	ch := NewMockChannel(ctrl)

	ch.EXPECT().ExchangeDeclare("parking", "direct", true, false, false, false, nil).Return(nil)
	ch.EXPECT().QueueDeclare("mail", true, false, false, false, nil).Return(amqp.Queue{Name: "mail"}, nil)
	ch.EXPECT().QueueBind("mail", "mail", "parking", false, nil).Return(nil)
	broker, err := NewBroker(ch, "parking", "mail")
	require.NoError(t, err)

	msg := NewMessage("Reminder", "alice@example.com", "<p>still parked</p>", "")
	ch.EXPECT().PublishWithContext(gomock.Any(), "parking", "mail", false, false, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, p amqp.Publishing) error {
			assert.Equal(t, amqp.Persistent, p.DeliveryMode)
			assert.Equal(t, msg.ID, p.MessageId)
			var decoded Message
			assert.NoError(t, json.Unmarshal(p.Body, &decoded))
			assert.Equal(t, msg, decoded)
			return nil
		})
	assert.NoError(t, broker.Dispatch(context.Background(), msg))

	ch.EXPECT().PublishWithContext(gomock.Any(), "parking", "mail", false, false, gomock.Any()).Return(errors.New("channel closed"))
	assert.Error(t, broker.Dispatch(context.Background(), msg))

	ch.EXPECT().Close().Return(nil)
	assert.NoError(t, broker.Close())
}

func TestNewBroker_DeclareFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ch := NewMockChannel(ctrl)

	ch.EXPECT().ExchangeDeclare("parking", "direct", true, false, false, false, nil).Return(errors.New("access refused"))
	ch.EXPECT().Close().Return(nil)

	_, err := NewBroker(ch, "parking", "mail")
	assert.Error(t, err)
}

func TestConsumer_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := NewMockSender(ctrl)
	consumer := NewConsumer(nil, "mail", sender, 1)
	ack := newFakeAcknowledger()

	msg := NewMessage("Reminder", "alice@example.com", "<p>hi</p>", "")
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tag         uint64
		body        []byte
		redelivered bool
		prepareMock func()
		expected    ackRecord
	}{
		{
			name:        "Sent and acked",
			tag:         1,
			body:        body,
			prepareMock: func() { sender.EXPECT().Send(gomock.Any(), msg).Return(nil) },
			expected:    ackRecord{acked: true},
		},
		{
			name:        "First failure is requeued",
			tag:         2,
			body:        body,
			prepareMock: func() { sender.EXPECT().Send(gomock.Any(), msg).Return(errors.New("provider down")) },
			expected:    ackRecord{nacked: true, requeue: true},
		},
		{
			name:        "Second failure is dropped",
			tag:         3,
			body:        body,
			redelivered: true,
			prepareMock: func() { sender.EXPECT().Send(gomock.Any(), msg).Return(errors.New("provider down")) },
			expected:    ackRecord{nacked: true},
		},
		{
			name:        "Malformed body is dropped",
			tag:         4,
			body:        []byte("{"),
			prepareMock: func() {},
			expected:    ackRecord{nacked: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := consumer.handle(context.Background(), delivery(ack, tt.tag, tt.body, tt.redelivered))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, *ack.record(tt.tag))
		})
	}
}

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	ch := NewMockChannel(ctrl)
	sender := NewMockSender(ctrl)
	ack := newFakeAcknowledger()

	msg := NewMessage("Reminder", "alice@example.com", "<p>hi</p>", "")
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- delivery(ack, 1, body, false)
	close(deliveries)
	var out <-chan amqp.Delivery = deliveries

	ch.EXPECT().Qos(4, 0, false).Return(nil)
	ch.EXPECT().Consume("mail", consumerTag, false, false, false, false, nil).Return(out, nil)
	sender.EXPECT().Send(gomock.Any(), msg).Return(nil)

	err = NewConsumer(ch, "mail", sender, 2).Run(context.Background())

	assert.EqualError(t, err, "deliveries channel closed")
	assert.True(t, ack.record(1).acked)
}

func TestDirectDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := NewMockSender(ctrl)
	dispatcher := NewDirectDispatcher(sender)
	msg := NewMessage("Reminder", "alice@example.com", "<p>hi</p>", "")

	sender.EXPECT().Send(gomock.Any(), msg).Return(nil)
	assert.NoError(t, dispatcher.Dispatch(context.Background(), msg))

	sender.EXPECT().Send(gomock.Any(), msg).Return(errors.New("provider down"))
	assert.Error(t, dispatcher.Dispatch(context.Background(), msg))
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, LogSender{}.Send(context.Background(), NewMessage("s", "r@example.com", "<p></p>", "")))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestMailerSendSender(t *testing.T) {
	attachment := filepath.Join(t.TempDir(), "monthly_report_1_2024-02.html")
	require.NoError(t, os.WriteFile(attachment, []byte("<h1>February</h1>"), 0o600))

	var payload map[string]interface{}
	client := mailersend.NewMailersend("test-key")
	client.SetClient(&http.Client{
		Timeout: time.Second,
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &payload))
			header := http.Header{}
			header.Set("X-Message-Id", "provider-1")
			return &http.Response{
				StatusCode: http.StatusAccepted,
				Header:     header,
				Body:       io.NopCloser(strings.NewReader("")),
				Request:    r,
			}, nil
		}),
	})
	sender := NewMailerSendSender(client, "Parking", "noreply@example.com")

	err := sender.Send(context.Background(), NewMessage("Monthly report", "alice@example.com", "<p>hi</p>", attachment))
	require.NoError(t, err)

	assert.Equal(t, "Monthly report", payload["subject"])
	assert.Equal(t, "<p>hi</p>", payload["html"])
	attachments, ok := payload["attachments"].([]interface{})
	require.True(t, ok)
	require.Len(t, attachments, 1)
	first := attachments[0].(map[string]interface{})
	assert.Equal(t, "monthly_report_1_2024-02.html", first["filename"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("<h1>February</h1>")), first["content"])

	err = sender.Send(context.Background(), NewMessage("Monthly report", "alice@example.com", "<p>hi</p>", "/nonexistent/file.html"))
	assert.Error(t, err)
}
