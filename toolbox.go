package toolbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/toolbox/core/config"
	"github.com/dmitrymomot/toolbox/core/email"
	"github.com/dmitrymomot/toolbox/core/storage"
	"github.com/dmitrymomot/toolbox/core/templater"
	"github.com/dmitrymomot/toolbox/core/validator"
	"github.com/dmitrymomot/toolbox/integration/email/postmark"
	"github.com/dmitrymomot/toolbox/integration/email/smtp"
	"github.com/dmitrymomot/toolbox/integration/storage/s3"
	"github.com/dmitrymomot/toolbox/pkg/hasher"
)

// Schemas holds the ready-made input schemas.
type Schemas struct {
	ID       validator.Schema
	FileName validator.Schema
}

// Toolbox bundles the helpers built from one Config.
type Toolbox struct {
	Validate  Schemas
	Media     *storage.Media
	Hasher    *hasher.Hasher
	Mailer    *email.Mailer
	Templater *templater.Templater
	Logger    *slog.Logger
}

// New validates cfg and builds every helper. SMTP, Postmark and S3 settings
// are loaded from the environment when the matching transport is selected.
func New(ctx context.Context, cfg Config, opts ...Option) (*Toolbox, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger
	if log == nil {
		log = slog.Default()
	}

	cfg = cfg.withDefaults()
	if err := validator.ValidateStruct(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	h, err := hasher.New(cfg.HashAlgorithm)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	mirror := o.mirror
	if mirror == nil && cfg.MediaMirror == MirrorS3 {
		if mirror, err = newS3Mirror(ctx, log); err != nil {
			return nil, err
		}
	}

	mediaOpts := []storage.Option{storage.WithLogger(log)}
	if mirror != nil {
		mediaOpts = append(mediaOpts, storage.WithMirror(mirror))
	}
	media, err := storage.New(cfg.Media, mediaOpts...)
	if err != nil {
		return nil, err
	}

	sender := o.sender
	if sender == nil {
		if sender, err = newSender(cfg); err != nil {
			return nil, err
		}
	}
	mailer, err := email.NewMailer(sender, email.WithMailerLogger(log))
	if err != nil {
		return nil, err
	}

	tplOpts := []templater.Option{templater.WithCache(cfg.TemplateCache)}
	if cfg.TemplatesDir != "" {
		tplOpts = append(tplOpts, templater.WithBaseDir(cfg.TemplatesDir))
	}

	return &Toolbox{
		Validate: Schemas{
			ID:       validator.ID,
			FileName: validator.FileName,
		},
		Media:     media,
		Hasher:    h,
		Mailer:    mailer,
		Templater: templater.New(tplOpts...),
		Logger:    log,
	}, nil
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

func newSender(cfg Config) (email.EmailSender, error) {
	switch cfg.EmailTransport {
	case TransportSMTP:
		var sc smtp.Config
		if err := config.Load(&sc); err != nil {
			return nil, errors.Join(ErrEmailTransport, err)
		}
		client, err := smtp.New(sc)
		if err != nil {
			return nil, errors.Join(ErrEmailTransport, err)
		}
		return client, nil
	case TransportPostmark:
		var pc postmark.Config
		if err := config.Load(&pc); err != nil {
			return nil, errors.Join(ErrEmailTransport, err)
		}
		client, err := postmark.New(pc)
		if err != nil {
			return nil, errors.Join(ErrEmailTransport, err)
		}
		return client, nil
	case TransportDev:
		return email.NewDevSender(cfg.EmailDevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown transport %q", ErrEmailTransport, cfg.EmailTransport)
	}
}

func newS3Mirror(ctx context.Context, log *slog.Logger) (storage.Mirror, error) {
	var sc s3.Config
	if err := config.Load(&sc); err != nil {
		return nil, errors.Join(ErrMirrorTransport, err)
	}
	mirror, err := s3.New(ctx, sc, s3.WithLogger(log))
	if err != nil {
		return nil, errors.Join(ErrMirrorTransport, err)
	}
	return mirror, nil
}
