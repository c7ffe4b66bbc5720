// Package email defines the EmailSender abstraction used across the toolbox
// together with a disk-backed development sender and a Mailer wrapper.
//
// Transports live in integration/email/smtp and integration/email/postmark.
// During development DevSender writes every message into a directory:
//
//	mailer, err := email.NewMailer(email.NewDevSender("./tmp/emails"))
//	if err != nil {
//		return err
//	}
//
//	err = mailer.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Welcome",
//		BodyHTML: "<h1>Hi!</h1>",
//		Tag:      "welcome",
//	})
//
// Send and SendAsync also report a SendResult carrying the message id
// assigned by transports that implement ResultSender (SMTP Message-ID,
// Postmark MessageID, the DevSender file name):
//
//	f := mailer.SendAsync(ctx, params)
//	// ...
//	res, err := f.Await()
//	if err != nil {
//		log.Error("welcome email", logger.Error(err))
//	}
//
// Invalid parameters fail with ErrInvalidParams joined with the
// validator.ValidationErrors describing each field.
package email
