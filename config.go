package toolbox

import (
	"github.com/dmitrymomot/toolbox/core/storage"
	"github.com/dmitrymomot/toolbox/pkg/hasher"
)

// Email transports.
const (
	TransportDev      = "dev"
	TransportSMTP     = "smtp"
	TransportPostmark = "postmark"
)

// Media mirrors.
const (
	MirrorNone = "none"
	MirrorS3   = "s3"
)

// Config wires every helper. Zero values take the documented defaults.
type Config struct {
	Media storage.Config

	HashAlgorithm  string `env:"HASH_ALGORITHM" envDefault:"sha1"`
	EmailTransport string `env:"EMAIL_TRANSPORT" envDefault:"dev" validate:"in:dev,smtp,postmark"`
	EmailDevDir    string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
	MediaMirror    string `env:"MEDIA_MIRROR" envDefault:"none" validate:"in:none,s3"`
	TemplatesDir   string `env:"TEMPLATES_DIR"`
	TemplateCache  bool   `env:"TEMPLATE_CACHE" envDefault:"false"`
}

func (c Config) withDefaults() Config {
	if c.HashAlgorithm == "" {
		c.HashAlgorithm = hasher.DefaultAlgorithm
	}
	if c.EmailTransport == "" {
		c.EmailTransport = TransportDev
	}
	if c.EmailDevDir == "" {
		c.EmailDevDir = "./tmp/emails"
	}
	if c.MediaMirror == "" {
		c.MediaMirror = MirrorNone
	}
	return c
}
