package smtp

import "time"

// Config holds SMTP server settings. Username and Password may be left empty
// for relays that accept unauthenticated mail.
type Config struct {
	Host         string        `env:"SMTP_HOST,required" validate:"required"`
	Port         int           `env:"SMTP_PORT" envDefault:"587" validate:"min:1;max:65535"`
	Username     string        `env:"SMTP_USERNAME"`
	Password     string        `env:"SMTP_PASSWORD"`
	TLSMode      string        `env:"SMTP_TLS_MODE" envDefault:"starttls" validate:"in:starttls,tls,plain"`
	SenderEmail  string        `env:"SENDER_EMAIL,required" validate:"required;email"`
	SupportEmail string        `env:"SUPPORT_EMAIL,required" validate:"required;email"`
	Timeout      time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}
