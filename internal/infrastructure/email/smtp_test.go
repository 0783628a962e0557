package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacebook/spacebook/internal/shared/config"
)

func TestSMTPEmailService_BuildMessage(t *testing.T) {
	s := NewSMTPEmailService(config.EmailConfig{
		SMTPHost:    "localhost",
		SMTPPort:    1025,
		FromAddress: "noreply@spacebook.local",
		FromName:    "Spacebook",
	})

	m := s.buildMessage("ana@example.edu", "Reservation approved", "<p>ok</p>", "ok")

	assert.Equal(t, []string{"ana@example.edu"}, m.GetHeader("To"))
	assert.Equal(t, []string{"[Spacebook] Reservation approved"}, m.GetHeader("Subject"))
	assert.Equal(t, []string{`"Spacebook" <noreply@spacebook.local>`}, m.GetHeader("From"))
}

func TestSMTPEmailService_BuildMessageWithoutName(t *testing.T) {
	s := NewSMTPEmailService(config.EmailConfig{FromAddress: "noreply@spacebook.local"})

	m := s.buildMessage("ana@example.edu", "Hi", "", "")

	assert.Equal(t, []string{"noreply@spacebook.local"}, m.GetHeader("From"))
}

func TestWrapHTML(t *testing.T) {
	out := wrapHTML("Reservation approved", "<p>See you there</p>")

	assert.Contains(t, out, "<h2>Reservation approved</h2>")
	assert.Contains(t, out, "<p>See you there</p>")
}
