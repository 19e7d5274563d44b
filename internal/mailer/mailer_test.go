package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestMailer_Send(t *testing.T) {
	d := &recordingDialer{}
	m := New("smtp.example.com", 587, "bot@example.com", "pw", "bot@example.com", WithDialer(d))

	err := m.Send(context.Background(), "mom@example.com", "Password Reset Request", "reset link")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"bot@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"mom@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Password Reset Request"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reset link")
}

func TestMailer_SendError(t *testing.T) {
	d := &recordingDialer{err: errors.New("connection refused")}
	m := New("smtp.example.com", 587, "", "", "bot@example.com", WithDialer(d))

	err := m.Send(context.Background(), "mom@example.com", "s", "b")
	assert.EqualError(t, err, "connection refused")
}

func TestMailer_NotConfigured(t *testing.T) {
	m := New("", 0, "", "", "")

	err := m.Send(context.Background(), "mom@example.com", "s", "b")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestMailer_CanceledContext(t *testing.T) {
	d := &recordingDialer{}
	m := New("smtp.example.com", 587, "", "", "bot@example.com", WithDialer(d))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, "mom@example.com", "s", "b")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.sent)
}
