// Package templates renders templ components into HTML strings suitable for
// email bodies.
//
// Define a component in a .templ file:
//
//	templ WelcomeEmail(name string) {
//		<h1>Welcome, { name }!</h1>
//	}
//
// and render it before handing the result to an email.EmailSender:
//
//	body, err := templates.Render(ctx, myapp.WelcomeEmail("Ada"))
//	if err != nil {
//		return err
//	}
//	err = mailer.SendEmail(ctx, email.SendEmailParams{BodyHTML: body})
//
// For file-based html/template rendering see core/templater.
package templates
