package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Riwayat.validate(); err != nil {
		return fmt.Errorf("riwayat: %w", err)
	}

	return nil
}

func (r *RiwayatConfig) validate() error {
	if r.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", r.PageSize)
	}
	if r.SearchDebounce < 0 {
		return fmt.Errorf("search_debounce must be >= 0 (got %v)", r.SearchDebounce)
	}
	if r.UndoDepth < 0 {
		return fmt.Errorf("undo_depth must be >= 0 (got %d)", r.UndoDepth)
	}
	if r.SessionIdleTTL <= 0 {
		return fmt.Errorf("session_idle_ttl must be > 0 (got %v)", r.SessionIdleTTL)
	}
	if r.BatchWait < 0 {
		return fmt.Errorf("batch_wait must be >= 0 (got %v)", r.BatchWait)
	}
	return nil
}
