package email

import (
	"sync"

	"tekfix_jobboard/internal/logger"
)

// LogProvider ничего не отправляет: пишет письмо в лог и запоминает его.
// Используется по умолчанию и в тестах.
type LogProvider struct {
	renderer TemplateRenderer

	mu   sync.Mutex
	sent []Email
}

func NewLogProvider(renderer TemplateRenderer) *LogProvider {
	return &LogProvider{renderer: renderer}
}

func (p *LogProvider) Validate() error { return nil }

func (p *LogProvider) Send(email *Email) error {
	p.mu.Lock()
	p.sent = append(p.sent, *email)
	p.mu.Unlock()

	logger.Info("📧 Email (log provider)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *LogProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	html := ""
	if p.renderer != nil {
		var err error
		if html, err = p.renderer.Render(templateName, data); err != nil {
			return err
		}
	}
	return p.Send(&Email{To: to, Subject: subject, HTMLBody: html})
}

// Sent возвращает копию отправленных писем
func (p *LogProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Email, len(p.sent))
	copy(out, p.sent)
	return out
}
