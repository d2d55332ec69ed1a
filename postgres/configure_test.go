package postgres_test

import (
	"testing"

	"github.com/railwayapp/railenv/environment"
	"github.com/railwayapp/railenv/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	level  string
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	events []event
}

func (r *recordingLogger) Warn(msg string, fields map[string]any) {
	r.events = append(r.events, event{"warn", msg, fields})
}

func (r *recordingLogger) Info(msg string, fields map[string]any) {
	r.events = append(r.events, event{"info", msg, fields})
}

var railwayEnv = environment.Map{
	"DATABASE_URL": "postgres://u:p@postgres.railway.internal:5432/railway",
}

func TestConfigure_EmptyConnectionString(t *testing.T) {
	logger := &recordingLogger{}

	_, err := postgres.Configure(railwayEnv, "", postgres.Options{}, logger)
	require.ErrorIs(t, err, postgres.ErrInvalidArgument)

	_, err = postgres.NewConfigurator(environment.Map{}, logger).Configure("", postgres.Options{RejectUnauthorized: true})
	require.ErrorIs(t, err, postgres.ErrInvalidArgument)

	assert.Empty(t, logger.events)
}

func TestConfigure_LocalAppendsSSLModeDisable(t *testing.T) {
	logger := &recordingLogger{}

	config, err := postgres.Configure(environment.Map{}, "postgres://localhost:5432/db", postgres.Options{}, logger)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/db?sslmode=disable", config.ConnectionString)
	assert.True(t, config.Modified)
	assert.False(t, config.SSL.RejectUnauthorized)

	require.Len(t, logger.events, 1)
	assert.Equal(t, "info", logger.events[0].level)
	assert.Equal(t, "disable", logger.events[0].fields["sslmode"])
}

func TestConfigure_LocalAppendsWithAmpersand(t *testing.T) {
	config, err := postgres.Configure(environment.Map{}, "postgres://localhost:5432/db?application_name=api", postgres.Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/db?application_name=api&sslmode=disable", config.ConnectionString)
	assert.True(t, config.Modified)
}

func TestConfigure_LocalKeywordValueDSN(t *testing.T) {
	config, err := postgres.Configure(environment.Map{}, "host=localhost user=app dbname=db", postgres.Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "host=localhost user=app dbname=db sslmode=disable", config.ConnectionString)
	assert.True(t, config.Modified)

	pgxConfig, err := config.PgxConfig()
	require.NoError(t, err)
	assert.Equal(t, "db", pgxConfig.Database)
	assert.Nil(t, pgxConfig.TLSConfig)
}

func TestConfigure_LocalKeepsExistingSSLMode(t *testing.T) {
	logger := &recordingLogger{}
	conn := "postgres://db.example.com:5432/db?sslmode=require"

	config, err := postgres.Configure(environment.Map{}, conn, postgres.Options{}, logger)
	require.NoError(t, err)

	assert.Equal(t, conn, config.ConnectionString)
	assert.False(t, config.Modified)
	assert.Empty(t, logger.events)
}

func TestConfigure_LocalForceSSL(t *testing.T) {
	logger := &recordingLogger{}
	conn := "postgres://db.example.com:5432/db"

	config, err := postgres.Configure(environment.Map{}, conn, postgres.Options{ForceSSL: true, RejectUnauthorized: true, CA: "ca-pem"}, logger)
	require.NoError(t, err)

	assert.Equal(t, conn, config.ConnectionString)
	assert.False(t, config.Modified)
	assert.True(t, config.SSL.RejectUnauthorized)
	assert.Equal(t, "ca-pem", config.SSL.CA)
	assert.Empty(t, logger.events)
}

func TestConfigure_LocalLoggingDisabled(t *testing.T) {
	logger := &recordingLogger{}

	config, err := postgres.Configure(environment.Map{}, "postgres://localhost/db", postgres.Options{DisableLogging: true}, logger)
	require.NoError(t, err)

	assert.True(t, config.Modified)
	assert.Empty(t, logger.events)
}

func TestConfigure_PlatformOverridesRejectUnauthorized(t *testing.T) {
	logger := &recordingLogger{}
	conn := "postgres://u:p@postgres.railway.internal:5432/railway"

	config, err := postgres.Configure(railwayEnv, conn, postgres.Options{RejectUnauthorized: true, CA: "ca-pem"}, logger)
	require.NoError(t, err)

	assert.Equal(t, conn, config.ConnectionString)
	assert.False(t, config.SSL.RejectUnauthorized)
	assert.Equal(t, "ca-pem", config.SSL.CA)
	assert.True(t, config.Modified)

	require.Len(t, logger.events, 1)
	warning := logger.events[0]
	assert.Equal(t, "warn", warning.level)
	assert.Equal(t, "rejectUnauthorized", warning.fields["setting"])
	assert.Equal(t, true, warning.fields["requested"])
	assert.Equal(t, false, warning.fields["applied"])
	assert.NotEmpty(t, warning.fields["reason"])
}

func TestConfigure_PlatformWarningSuppressed(t *testing.T) {
	logger := &recordingLogger{}

	config, err := postgres.Configure(railwayEnv, "postgres://postgres.railway.internal/db", postgres.Options{RejectUnauthorized: true, DisableLogging: true}, logger)
	require.NoError(t, err)

	assert.False(t, config.SSL.RejectUnauthorized)
	assert.True(t, config.Modified)
	assert.Empty(t, logger.events)
}

func TestConfigure_PlatformDoesNotAppendSSLMode(t *testing.T) {
	logger := &recordingLogger{}

	// detection is driven by the environment, not by the connection string
	config, err := postgres.Configure(railwayEnv, "postgres://localhost:5432/db", postgres.Options{}, logger)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/db", config.ConnectionString)
	assert.True(t, config.Modified)
	assert.Empty(t, logger.events)
}

func TestConfigure_PrivateConnectionStringWithoutPlatformEnv(t *testing.T) {
	config, err := postgres.Configure(environment.Map{}, "postgres://postgres.railway.internal:5432/db", postgres.Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "postgres://postgres.railway.internal:5432/db?sslmode=disable", config.ConnectionString)
	assert.True(t, config.Modified)
}
