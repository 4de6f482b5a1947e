package filescomwr

import (
	"net/url"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/filestore"
)

// Config defines the configuration options for the Files.com client.
// Env names are relative; load with cfgloader.WithPrefix("FILES_COM_").
type Config struct {
	// Enable turns the integration on. A disabled client fails every call with CodeDisabled.
	Enable bool `yaml:"enable" env:"ENABLE" default:"false"`

	// BaseURL is the site URL, e.g. "https://acme.files.com". Required when enabled.
	BaseURL string `yaml:"base_url" env:"BASE_URL"`

	// APIKey authenticates with the X-FilesAPI-Key header. Takes precedence over Username/Password.
	APIKey string `yaml:"api_key" env:"API_KEY" mask:"true"`

	// Username and Password create a session when no APIKey is set.
	Username string `yaml:"username" env:"USERNAME"`
	Password string `yaml:"password" env:"PASSWORD" mask:"true"`

	// LocalStoragePath is the default directory for downloads to disk.
	LocalStoragePath string `yaml:"local_storage_path" env:"LOCAL_STORAGE_PATH" default:"/usr/src/app/local-storage"`

	// Network holds the static resilience settings.
	Network NetworkConfig `yaml:"network" envPrefix:"NETWORK_"`
}

// NetworkConfig defines retry and timeout behaviour of remote calls.
type NetworkConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int `yaml:"max_retries" env:"MAX_RETRIES" validate:"gte=0" default:"3"`

	// MinRetryDelay is the delay before the first retry.
	MinRetryDelay time.Duration `yaml:"min_retry_delay" env:"MIN_RETRY_DELAY" default:"500ms"`

	// MaxRetryDelay caps the exponential backoff.
	MaxRetryDelay time.Duration `yaml:"max_retry_delay" env:"MAX_RETRY_DELAY" default:"1500ms"`

	// Timeout bounds every HTTP request.
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT" default:"30s"`
}

const (
	defaultMaxRetries    = 3
	defaultMinRetryDelay = 500 * time.Millisecond
	defaultMaxRetryDelay = 1500 * time.Millisecond
	defaultTimeout       = 30 * time.Second
)

// DefaultLocalStoragePath is used for downloads to disk when no path is configured.
const DefaultLocalStoragePath = "/usr/src/app/local-storage"

// DefaultNetworkConfig returns the network settings used when none are given.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		MaxRetries:    defaultMaxRetries,
		MinRetryDelay: defaultMinRetryDelay,
		MaxRetryDelay: defaultMaxRetryDelay,
		Timeout:       defaultTimeout,
	}
}

// WithDefaults fills zero durations with defaults. MaxRetries of 0 is kept.
func (n NetworkConfig) WithDefaults() NetworkConfig {
	def := DefaultNetworkConfig()
	if n.MinRetryDelay <= 0 {
		n.MinRetryDelay = def.MinRetryDelay
	}
	if n.MaxRetryDelay <= 0 {
		n.MaxRetryDelay = def.MaxRetryDelay
	}
	if n.MaxRetryDelay < n.MinRetryDelay {
		n.MaxRetryDelay = n.MinRetryDelay
	}
	if n.Timeout <= 0 {
		n.Timeout = def.Timeout
	}
	if n.MaxRetries < 0 {
		n.MaxRetries = 0
	}
	return n
}

// Validate checks that an enabled config can reach Files.com.
// A disabled config is always valid.
func (c Config) Validate() error {
	if !c.Enable {
		return nil
	}

	if c.BaseURL == "" {
		return invalidConfig("base_url", "Base URL is required when Files.com is enabled")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return invalidConfig("base_url", "Base URL must be an absolute URL with a host")
	}

	if c.APIKey == "" && (c.Username == "" || c.Password == "") {
		return invalidConfig("api_key", "Either an API key or both username and password are required")
	}

	return nil
}

// usesSession reports whether authentication goes through a session.
func (c Config) usesSession() bool {
	return c.APIKey == ""
}

func invalidConfig(field, description string) error {
	return errx.New(
		"invalid Files.com configuration",
		errx.WithCode(filestore.CodeInvalidConfig),
		errx.WithType(errx.T_Validation),
		errx.WithFields(errx.M{field: description}),
	)
}
