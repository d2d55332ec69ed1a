package environment

import "os"

// Env is a read-only view of environment variables.
type Env interface {
	Lookup(name string) (string, bool)
}

// Map is an in-memory environment
type Map map[string]string

func (m Map) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

type osEnv struct{}

func (osEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// OS returns the process environment. Values are read at lookup time.
func OS() Env {
	return osEnv{}
}

// Layered resolves a name against each layer in order, first hit wins.
type Layered []Env

func (l Layered) Lookup(name string) (string, bool) {
	for _, env := range l {
		if env == nil {
			continue
		}
		if value, ok := env.Lookup(name); ok {
			return value, true
		}
	}
	return "", false
}

// Get returns the value of name, or "" when unset.
func Get(env Env, name string) string {
	if env == nil {
		return ""
	}
	value, _ := env.Lookup(name)
	return value
}
