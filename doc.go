// Package toolbox bundles small application helpers behind one constructor:
// input schemas, media storage with zip archiving, seeded hashing, mail
// delivery and template rendering.
//
//	cfg, err := toolbox.LoadConfig()
//	if err != nil {
//		return err
//	}
//
//	tb, err := toolbox.New(ctx, cfg, toolbox.WithLogger(logger.New(logger.WithProduction("api"))))
//	if err != nil {
//		return err
//	}
//
//	if res := tb.Validate.ID.Validate(r.FormValue("id")); res.Error != nil {
//		return res.Error
//	}
//	path, err := tb.Media.StoreImage(ctx, file, header.Filename, "avatars")
//
// # Packages
//
// Core packages, one concern each:
//
//   - github.com/dmitrymomot/toolbox/core/storage: media storage, zip archives, remote mirroring
//   - github.com/dmitrymomot/toolbox/core/validator: rules, struct tags and value schemas
//   - github.com/dmitrymomot/toolbox/core/email: EmailSender, DevSender and Mailer
//   - github.com/dmitrymomot/toolbox/core/email/templates: templ component rendering
//   - github.com/dmitrymomot/toolbox/core/templater: html/template file rendering
//   - github.com/dmitrymomot/toolbox/core/config: environment configuration loading
//   - github.com/dmitrymomot/toolbox/core/logger: slog construction and attribute helpers
//
// Utilities:
//
//   - github.com/dmitrymomot/toolbox/pkg/async: futures for background work
//   - github.com/dmitrymomot/toolbox/pkg/hasher: seeded digests and bcrypt passwords
//   - github.com/dmitrymomot/toolbox/pkg/slug: URL and file name slugs
//
// Integrations:
//
//   - github.com/dmitrymomot/toolbox/integration/email/smtp: SMTP transport
//   - github.com/dmitrymomot/toolbox/integration/email/postmark: Postmark transport
//   - github.com/dmitrymomot/toolbox/integration/storage/s3: S3 media mirror
//
// # Environment
//
// LoadConfig reads MEDIA_IMAGES_DIR, MEDIA_FILES_DIR, HASH_ALGORITHM,
// EMAIL_TRANSPORT (dev, smtp, postmark), EMAIL_DEV_DIR, MEDIA_MIRROR
// (none, s3), TEMPLATES_DIR and TEMPLATE_CACHE. A .env file in the working
// directory is honored.
package toolbox
