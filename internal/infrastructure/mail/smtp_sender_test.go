package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/ibeauty-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestNewSMTPSender_SinHost_Deshabilitado(t *testing.T) {
	assert.Nil(t, NewSMTPSender(config.SMTPConfig{}))
}

func TestSendVerification_ArmaMensaje(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "smtp.example.com", Port: 465, From: "no-reply@example.com"})
	require.NotNil(t, s)

	var sent *gomail.Message
	s.send = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	err := s.SendVerification(context.Background(), "ana@example.com", "Ana Ruiz", "https://api.example.com/api/auth/verify/abc")
	require.NoError(t, err)
	require.NotNil(t, sent)

	assert.Equal(t, []string{"no-reply@example.com"}, sent.GetHeader("From"))
	assert.Equal(t, []string{"Verify your email"}, sent.GetHeader("Subject"))
	require.Len(t, sent.GetHeader("To"), 1)
	assert.Contains(t, sent.GetHeader("To")[0], "ana@example.com")

	var buf bytes.Buffer
	_, err = sent.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "https://api.example.com/api/auth/verify/abc")
}

func TestSendVerification_ErrorDeEnvio(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "smtp.example.com", Port: 465})
	s.send = func(*gomail.Message) error { return errors.New("connection refused") }

	err := s.SendVerification(context.Background(), "ana@example.com", "Ana", "https://x")
	assert.ErrorContains(t, err, "connection refused")
}
