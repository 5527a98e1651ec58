package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "loopback", cfg.Server.Bind)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadParsesYAML(t *testing.T) {
	path := writeTempConfig(t, `
oauth:
  accessTokenUrl: https://auth.example.com/oauth2/access_token
  clientId: skill-client
  clientSecret: hunter2
api:
  lmsUrl: https://lms.example.com/api
  catalogUrl: https://catalog.example.com/api/v1
server:
  port: 8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "skill-client", cfg.OAuth.ClientID)
	assert.Equal(t, "https://lms.example.com/api", cfg.API.LMSURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level, "defaults still applied")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "oauth: [not a map")
	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LMS_API_URL", "https://lms.override.example.com")
	t.Setenv("EDX_SKILL_PORT", "9999")
	t.Setenv("EDX_SKILL_LOG_LEVEL", "DEBUG")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://lms.override.example.com", cfg.API.LMSURL)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestExpandSensitiveFields(t *testing.T) {
	t.Setenv("MY_SECRET", "s3cr3t")
	path := writeTempConfig(t, `
oauth:
  accessTokenUrl: https://auth.example.com/oauth2/access_token
  clientId: skill-client
  clientSecret: ${MY_SECRET}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.OAuth.ClientSecret)
}

func TestValidateRequiresCredentials(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	issues := Validate(&cfg)
	paths := make([]string, 0, len(issues))
	for _, issue := range issues {
		paths = append(paths, issue.Path)
	}
	assert.Contains(t, paths, "oauth.accessTokenUrl")
	assert.Contains(t, paths, "oauth.clientId")
	assert.Contains(t, paths, "oauth.clientSecret")
	assert.Contains(t, paths, "api.lmsUrl")
	assert.Contains(t, paths, "api.catalogUrl")
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	cfg := Config{
		OAuth: OAuthConfig{
			AccessTokenURL: "https://auth.example.com/oauth2/access_token",
			ClientID:       "id",
			ClientSecret:   "secret",
		},
		API: APIConfig{
			LMSURL:     "https://lms.example.com/api",
			CatalogURL: "https://catalog.example.com/api/v1",
		},
	}
	applyDefaults(&cfg)

	assert.Empty(t, Validate(&cfg))
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Config{
		OAuth:   OAuthConfig{AccessTokenURL: "u", ClientID: "i", ClientSecret: "s"},
		API:     APIConfig{LMSURL: "l", CatalogURL: "c"},
		Server:  ServerConfig{Port: 70000, Bind: "wan"},
		Logging: LoggingConfig{Level: "loud"},
	}

	issues := Validate(&cfg)
	require.Len(t, issues, 3)
}
