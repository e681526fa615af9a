package email

import (
	"testing"

	"tekfix_jobboard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_Welcome(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateWelcome, TemplateData{
		"Name":    "Jane",
		"Email":   "jane@acme.io",
		"Role":    "employer",
		"Company": "Acme",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Welcome to TekFix Jobs, Jane!")
	assert.Contains(t, html, "post openings for Acme")

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestLogProvider_RecordsSent(t *testing.T) {
	p := NewLogProvider(NewTemplateManager())

	err := p.SendTemplate([]string{"jane@acme.io"}, "Welcome", TemplateWelcome, TemplateData{"Name": "Jane"})
	require.NoError(t, err)

	sent := p.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"jane@acme.io"}, sent[0].To)
	assert.Contains(t, sent[0].HTMLBody, "Start browsing")
}

func TestNewProvider(t *testing.T) {
	cfg := config.Default()

	p, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &LogProvider{}, p)

	cfg.Email.Provider = "smtp"
	cfg.Email.SMTPHost = ""
	_, err = NewProvider(cfg)
	assert.Error(t, err)

	cfg.Email.SMTPHost = "smtp.example.com"
	p, err = NewProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &GomailProvider{}, p)

	msg := p.(*GomailProvider).buildMessage(&Email{To: []string{"a@b.c"}, Subject: "hi", Body: "text"})
	assert.Equal(t, []string{"hi"}, msg.GetHeader("Subject"))
}
