package environment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/railwayapp/railenv/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Lookup(t *testing.T) {
	env := environment.Map{"REDIS_URL": "redis://localhost:6379", "EMPTY": ""}

	value, ok := env.Lookup("REDIS_URL")
	assert.True(t, ok)
	assert.Equal(t, "redis://localhost:6379", value)

	value, ok = env.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, value)

	_, ok = env.Lookup("MISSING")
	assert.False(t, ok)
}

func TestLayered_FirstHitWins(t *testing.T) {
	env := environment.Layered{
		nil,
		environment.Map{"DATABASE_URL": "postgres://override/db"},
		environment.Map{"DATABASE_URL": "postgres://base/db", "PORT": "3000"},
	}

	assert.Equal(t, "postgres://override/db", environment.Get(env, "DATABASE_URL"))
	assert.Equal(t, "3000", environment.Get(env, "PORT"))
	assert.Empty(t, environment.Get(env, "MISSING"))
	assert.Empty(t, environment.Get(nil, "PORT"))
}

func TestOS_Lookup(t *testing.T) {
	t.Setenv("RAILENV_TEST_VAR", "value")

	value, ok := environment.OS().Lookup("RAILENV_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", value)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")

	require.NoError(t, os.WriteFile(base, []byte("DATABASE_URL=postgres://localhost:5432/db\nPORT=3000\n"), 0o644))
	require.NoError(t, os.WriteFile(local, []byte("DATABASE_URL=postgres://u:p@postgres.railway.internal:5432/db\n"), 0o644))

	env, err := environment.LoadDotEnv(base, local)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@postgres.railway.internal:5432/db", env["DATABASE_URL"])
	assert.Equal(t, "3000", env["PORT"])

	_, ok := os.LookupEnv("DATABASE_URL")
	if ok {
		assert.NotEqual(t, env["DATABASE_URL"], os.Getenv("DATABASE_URL"))
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	_, err := environment.LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestParseDotEnv(t *testing.T) {
	env, err := environment.ParseDotEnv("API_KEY=abc123\nREDIS_URL=redis://localhost:6379\n")
	require.NoError(t, err)
	assert.Len(t, env, 2)
	assert.Equal(t, "abc123", env["API_KEY"])
}
