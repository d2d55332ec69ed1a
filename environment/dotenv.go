package environment

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadDotEnv parses the given .env files into a Map without touching the
// process environment. Later files override earlier ones.
func LoadDotEnv(paths ...string) (Map, error) {
	env := make(Map)
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		for key, value := range values {
			env[key] = value
		}
	}
	return env, nil
}

// ParseDotEnv parses dotenv formatted content.
func ParseDotEnv(content string) (Map, error) {
	values, err := godotenv.Unmarshal(content)
	if err != nil {
		return nil, err
	}
	return Map(values), nil
}
