// Package postmark implements email.EmailSender on top of the Postmark
// transactional API.
//
//	sender, err := postmark.New(postmark.Config{
//		PostmarkServerToken: os.Getenv("POSTMARK_SERVER_TOKEN"),
//		SenderEmail:         "noreply@example.com",
//		SupportEmail:        "support@example.com",
//	})
//	if err != nil {
//		return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Welcome",
//		BodyHTML: body,
//		Tag:      "welcome",
//	})
//
// Opens and HTML link clicks are tracked. Reply-To is always the support
// address. API level failures are returned joined with
// email.ErrFailedToSendEmail.
package postmark
