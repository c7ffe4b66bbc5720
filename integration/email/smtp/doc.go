// Package smtp implements email.EmailSender over SMTP.
//
//	sender, err := smtp.New(smtp.Config{
//		Host:         "smtp.example.com",
//		Port:         587,
//		Username:     "mailer",
//		Password:     "secret",
//		TLSMode:      "starttls",
//		SenderEmail:  "noreply@example.com",
//		SupportEmail: "support@example.com",
//	})
//
// TLS modes:
//
//   - "starttls": plain connection upgraded with STARTTLS, usually port 587
//   - "tls": implicit TLS, usually port 465
//   - "plain": no encryption, for local relays and tests
//
// Config carries env tags (SMTP_HOST, SMTP_PORT, ...) for config.Load.
// Every message gets a fresh connection and a UUID based Message-ID.
package smtp
