package client

import (
	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/filestore/filescomwr"
)

// DefaultRootURL is the REST root every request path is resolved against.
const DefaultRootURL = "https://app.files.com/api/rest/v1"

// Config holds what the REST client needs to reach and authenticate against Files.com.
type Config struct {
	RootURL  string
	APIKey   string
	Username string
	Password string
	Network  filescomwr.NetworkConfig
}

// FromFilesCom derives a REST client config from the shared Files.com config.
// An empty rootURL selects DefaultRootURL.
func FromFilesCom(cfg filescomwr.Config, rootURL string) Config {
	if rootURL == "" {
		rootURL = DefaultRootURL
	}
	return Config{
		RootURL:  rootURL,
		APIKey:   cfg.APIKey,
		Username: cfg.Username,
		Password: cfg.Password,
		Network:  cfg.Network,
	}
}

func (c Config) Validate() error {
	if c.APIKey == "" && (c.Username == "" || c.Password == "") {
		return errx.New("either an API key or both username and password are required",
			errx.WithCode(filestore.CodeInvalidConfig),
			errx.WithType(errx.T_Validation),
			errx.WithFields(errx.M{"api_key": "Either an API key or both username and password are required"}),
		)
	}
	return nil
}
