package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/railwayapp/railenv/environment"
	"github.com/railwayapp/railenv/logging"
	"github.com/railwayapp/railenv/platform"
)

// ErrInvalidArgument is returned when Configure is called without a
// connection string.
var ErrInvalidArgument = errors.New("invalid argument")

// Options are the caller's SSL preferences. The zero value is the default:
// certificates are not verified, SSL is not forced and logging is on.
type Options struct {
	RejectUnauthorized bool
	CA                 string
	ForceSSL           bool
	DisableLogging     bool
}

// SSLConfig is the TLS policy a client should apply.
type SSLConfig struct {
	RejectUnauthorized bool   `json:"rejectUnauthorized" yaml:"rejectUnauthorized" toml:"rejectUnauthorized"`
	CA                 string `json:"ca,omitempty" yaml:"ca,omitempty" toml:"ca,omitempty"`
}

// ConnectionConfig is a connection string and SSL settings ready for a
// PostgreSQL client. Modified is set when either differs from what the
// caller asked for.
type ConnectionConfig struct {
	ConnectionString string    `json:"connectionString" yaml:"connectionString" toml:"connectionString"`
	SSL              SSLConfig `json:"ssl" yaml:"ssl" toml:"ssl"`
	Modified         bool      `json:"modified" yaml:"modified" toml:"modified"`
}

// Configurator adjusts connection settings for the environment it was built with.
type Configurator struct {
	env    environment.Env
	logger logging.Logger
}

// NewConfigurator returns a Configurator reading env. A nil env means the
// process environment and a nil logger discards events.
func NewConfigurator(env environment.Env, logger logging.Logger) *Configurator {
	if env == nil {
		env = environment.OS()
	}
	if logger == nil {
		logger = logging.Nop
	}
	return &Configurator{env: env, logger: logger}
}

// Configure is shorthand for NewConfigurator(env, logger).Configure.
func Configure(env environment.Env, connectionString string, opts Options, logger logging.Logger) (ConnectionConfig, error) {
	return NewConfigurator(env, logger).Configure(connectionString, opts)
}

// Configure adjusts connectionString and opts for the Railway private network
// when it is detected, and disables SSL for local connections otherwise.
func (c *Configurator) Configure(connectionString string, opts Options) (ConnectionConfig, error) {
	if connectionString == "" {
		return ConnectionConfig{}, fmt.Errorf("%w: connection string is required", ErrInvalidArgument)
	}

	config := ConnectionConfig{
		ConnectionString: connectionString,
		SSL: SSLConfig{
			RejectUnauthorized: opts.RejectUnauthorized,
			CA:                 opts.CA,
		},
	}

	if platform.Detect(c.env) {
		// Private network databases present self-signed certificates.
		config.SSL.RejectUnauthorized = false
		config.Modified = true

		if opts.RejectUnauthorized && !opts.DisableLogging {
			c.logger.Warn("Overriding rejectUnauthorized for Railway private network connection", map[string]any{
				"setting":   "rejectUnauthorized",
				"reason":    "Railway private network services use self-signed certificates",
				"requested": true,
				"applied":   false,
			})
		}
		return config, nil
	}

	if !opts.ForceSSL && !strings.Contains(connectionString, "sslmode=") {
		config.ConnectionString = appendQuery(connectionString, "sslmode=disable")
		config.Modified = true

		if !opts.DisableLogging {
			c.logger.Info("Disabled SSL for connection outside Railway private network", map[string]any{
				"sslmode": "disable",
				"reason":  "no Railway private network detected and SSL not forced",
			})
		}
	}

	return config, nil
}

// appendQuery adds param to a URL connection string, or as another
// keyword for keyword/value DSNs such as "host=localhost dbname=app".
func appendQuery(connectionString, param string) string {
	if !isURL(connectionString) {
		return strings.TrimRight(connectionString, " ") + " " + param
	}

	separator := "?"
	if strings.Contains(connectionString, "?") {
		separator = "&"
	}
	return connectionString + separator + param
}

func isURL(connectionString string) bool {
	lower := strings.ToLower(connectionString)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") ||
		!strings.Contains(connectionString, "=")
}
