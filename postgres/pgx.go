package postgres

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/jackc/pgx/v5"
)

// ErrInvalidCA is returned when the CA bundle holds no PEM certificates.
var ErrInvalidCA = errors.New("no certificates found in CA bundle")

// password=... in keyword/value DSNs and URL query strings, quoted or bare.
var passwordParam = regexp.MustCompile(`(?i)(\bpassword\s*=\s*)('(?:[^'\\]|\\.)*'|[^\s&]+)`)

// TLSConfig builds the client TLS settings for serverName.
func (s SSLConfig) TLSConfig(serverName string) (*tls.Config, error) {
	tlsConfig := &tls.Config{ServerName: serverName}
	if err := s.apply(tlsConfig, serverName); err != nil {
		return nil, err
	}
	return tlsConfig, nil
}

// apply layers the SSL decision over an existing TLS config. Client
// certificates and root CAs already present are kept unless CA is set.
func (s SSLConfig) apply(tlsConfig *tls.Config, host string) error {
	if s.CA != "" {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM([]byte(s.CA)) {
			return ErrInvalidCA
		}
		tlsConfig.RootCAs = pool
	}

	if !s.RejectUnauthorized {
		tlsConfig.InsecureSkipVerify = true
		tlsConfig.VerifyPeerCertificate = nil
		return nil
	}

	// verify-ca checks the chain in VerifyPeerCertificate with
	// InsecureSkipVerify set; leave that in place.
	if tlsConfig.VerifyPeerCertificate != nil {
		return nil
	}
	tlsConfig.InsecureSkipVerify = false
	if tlsConfig.ServerName == "" {
		tlsConfig.ServerName = host
	}
	return nil
}

// PgxConfig parses the connection string into a pgx config and applies the
// SSL settings to every TLS attempt. No connection is opened.
func (c ConnectionConfig) PgxConfig() (*pgx.ConnConfig, error) {
	config, err := pgx.ParseConfig(c.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if config.TLSConfig != nil {
		if err := c.SSL.apply(config.TLSConfig, config.Host); err != nil {
			return nil, err
		}
	}

	for _, fallback := range config.Fallbacks {
		if fallback.TLSConfig == nil {
			continue
		}
		if err := c.SSL.apply(fallback.TLSConfig, fallback.Host); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// Redacted returns the connection string with any password masked.
func (c ConnectionConfig) Redacted() string {
	redacted := c.ConnectionString
	if u, err := url.Parse(redacted); err == nil && u.User != nil {
		redacted = u.Redacted()
	}
	return passwordParam.ReplaceAllString(redacted, "${1}xxxxx")
}
