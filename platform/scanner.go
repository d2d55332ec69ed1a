package platform

import "github.com/railwayapp/railenv/environment"

// KnownVars are the variables Railway injects for database and cache
// references, in scan order.
var KnownVars = []string{
	"DATABASE_URL",
	"DATABASE_PRIVATE_URL",
	"POSTGRES_URL",
	"POSTGRES_PRIVATE_URL",
	"PGURL",
	"REDIS_URL",
	"REDIS_PRIVATE_URL",
	"MONGO_URL",
	"MONGO_PRIVATE_URL",
	"MYSQL_URL",
	"MYSQL_PRIVATE_URL",
}

// DetectionResult describes which known variables reference the private network.
type DetectionResult struct {
	IsPlatform    bool     `json:"isPlatform" yaml:"isPlatform" toml:"isPlatform"`
	DetectedVars  []string `json:"detectedVars" yaml:"detectedVars" toml:"detectedVars"`
	PlatformHosts []string `json:"platformHosts" yaml:"platformHosts" toml:"platformHosts"`
}

// matchVar returns the private hostname referenced by name, if any.
func matchVar(env environment.Env, name string) (string, bool) {
	value := environment.Get(env, name)
	if !IsPlatformHost(value) {
		return "", false
	}
	return Hostname(value)
}

// Detect reports whether any known variable references the private network.
// It stops at the first match.
func Detect(env environment.Env) bool {
	for _, name := range KnownVars {
		if _, ok := matchVar(env, name); ok {
			return true
		}
	}
	return false
}

// Scan checks every known variable and collects the matches.
func Scan(env environment.Env) DetectionResult {
	result := DetectionResult{
		DetectedVars:  make([]string, 0),
		PlatformHosts: make([]string, 0),
	}
	seen := make(map[string]bool)

	for _, name := range KnownVars {
		host, ok := matchVar(env, name)
		if !ok {
			continue
		}
		result.DetectedVars = append(result.DetectedVars, name)
		if !seen[host] {
			seen[host] = true
			result.PlatformHosts = append(result.PlatformHosts, host)
		}
	}

	result.IsPlatform = len(result.DetectedVars) > 0
	return result
}
