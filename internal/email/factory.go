package email

import (
	"fmt"

	"tekfix_jobboard/internal/config"
)

// NewProvider выбирает провайдера по email.provider
func NewProvider(cfg *config.Config) (Provider, error) {
	templates := NewTemplateManager()
	if cfg.Email.TemplatesDir != "" {
		if err := templates.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
	}

	switch cfg.Email.Provider {
	case "", "log":
		return NewLogProvider(templates), nil
	case "smtp":
		p := NewGomailProvider(&SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		}, templates)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.Email.Provider)
	}
}
