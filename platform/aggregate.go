package platform

import "github.com/railwayapp/railenv/environment"

// EnvironmentKind names where the process runs.
type EnvironmentKind string

const (
	EnvironmentRailway EnvironmentKind = "railway"
	EnvironmentLocal   EnvironmentKind = "local"
)

// SSLSettings are the TLS defaults for private network services.
type SSLSettings struct {
	Enabled             bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	RejectUnauthorized  bool `json:"rejectUnauthorized" yaml:"rejectUnauthorized" toml:"rejectUnauthorized"`
	ValidateCertificate bool `json:"validateCertificate" yaml:"validateCertificate" toml:"validateCertificate"`
}

// Settings is a summary of the runtime environment derived from a single scan.
type Settings struct {
	IsPlatform       bool            `json:"isPlatform" yaml:"isPlatform" toml:"isPlatform"`
	SSL              SSLSettings     `json:"ssl" yaml:"ssl" toml:"ssl"`
	Environment      EnvironmentKind `json:"environment" yaml:"environment" toml:"environment"`
	DetectedServices []string        `json:"detectedServices" yaml:"detectedServices" toml:"detectedServices"`
	Hosts            []string        `json:"hosts" yaml:"hosts" toml:"hosts"`
}

// Aggregate scans env and summarizes the result.
func Aggregate(env environment.Env) Settings {
	return SettingsFrom(Scan(env))
}

// SettingsFrom projects an existing scan result without scanning again.
func SettingsFrom(result DetectionResult) Settings {
	kind := EnvironmentLocal
	if result.IsPlatform {
		kind = EnvironmentRailway
	}

	return Settings{
		IsPlatform: result.IsPlatform,
		SSL: SSLSettings{
			Enabled:             result.IsPlatform,
			RejectUnauthorized:  false,
			ValidateCertificate: false,
		},
		Environment:      kind,
		DetectedServices: result.DetectedVars,
		Hosts:            result.PlatformHosts,
	}
}
