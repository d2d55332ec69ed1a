package platform

import (
	"net/url"
	"strings"
)

// InternalDomain is the hostname fragment shared by every service on
// Railway's private network, e.g. postgres.railway.internal.
const InternalDomain = "railway.internal"

// IsPlatformHost reports whether rawURL points at a host on the private
// network. Blank or unparseable input is never a match.
func IsPlatformHost(rawURL string) bool {
	host, ok := Hostname(rawURL)
	if !ok {
		return false
	}
	return strings.Contains(host, InternalDomain)
}

// Hostname returns the lower-cased hostname of rawURL.
func Hostname(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}
	return host, true
}
