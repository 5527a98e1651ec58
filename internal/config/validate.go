package config

import (
	"fmt"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues. Returns nil if valid.
// The OAuth credential and upstream URLs are required: the process must
// refuse to start without them rather than fail on the first voice request.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.OAuth.AccessTokenURL == "" {
		issues = append(issues, ValidationIssue{
			Path:    "oauth.accessTokenUrl",
			Message: "access token URL is required (or set ACCESS_TOKEN_URL)",
		})
	}
	if cfg.OAuth.ClientID == "" {
		issues = append(issues, ValidationIssue{
			Path:    "oauth.clientId",
			Message: "client id is required (or set OAUTH_CLIENT_ID)",
		})
	}
	if cfg.OAuth.ClientSecret == "" {
		issues = append(issues, ValidationIssue{
			Path:    "oauth.clientSecret",
			Message: "client secret is required (or set OAUTH_CLIENT_SECRET)",
		})
	}
	if cfg.API.LMSURL == "" {
		issues = append(issues, ValidationIssue{
			Path:    "api.lmsUrl",
			Message: "LMS API URL is required (or set LMS_API_URL)",
		})
	}
	if cfg.API.CatalogURL == "" {
		issues = append(issues, ValidationIssue{
			Path:    "api.catalogUrl",
			Message: "catalog API URL is required (or set CATALOG_API_URL)",
		})
	}

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		issues = append(issues, ValidationIssue{
			Path:    "server.port",
			Message: fmt.Sprintf("port must be 0-65535, got %d", cfg.Server.Port),
		})
	}

	validBinds := []string{"loopback", "lan", "custom"}
	if cfg.Server.Bind != "" && !slices.Contains(validBinds, cfg.Server.Bind) {
		issues = append(issues, ValidationIssue{
			Path:    "server.bind",
			Message: fmt.Sprintf("must be one of %v, got %q", validBinds, cfg.Server.Bind),
		})
	}

	validLogLevels := []string{"silent", "fatal", "error", "warn", "info", "debug", "trace"}
	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	return issues
}
