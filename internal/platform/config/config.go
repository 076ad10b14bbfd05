// Package config reads application settings from environment variables
//
// A Conf is a prefix over the environment: New().Prefix("BASECONV_API_") reads
// BASECONV_API_PORT for key "PORT". Must* accessors panic through the root logger
// when a key is missing or malformed; May* accessors fall back to a default and
// warn when a value is present but unusable.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"baseconv/internal/platform/logger"
)

// Conf is a namespaced view over environment variables
type Conf struct{ prefix string }

// New creates a root Conf with no prefix
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value for key and its full env name
func (c Conf) lookup(key string) (string, string) {
	k := c.key(key)
	return strings.TrimSpace(os.Getenv(k)), k
}

// MustString panics if the key is missing or blank
func (c Conf) MustString(key string) string {
	v, k := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", k).Msg("missing required env")
	}
	return v
}

// MustInt panics if the key is missing or not an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MayString returns the value or def when missing or blank
func (c Conf) MayString(key, def string) string {
	if v, _ := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def; an unparsable value warns and yields def
func (c Conf) MayInt(key string, def int) int {
	s, k := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayIntRange is MayInt limited to lo..hi inclusive; out of range warns and yields def
func (c Conf) MayIntRange(key string, def, lo, hi int) int {
	v := c.MayInt(key, def)
	if v < lo || v > hi {
		logger.Get().Warn().Str("key", c.key(key)).Int("value", v).Int("min", lo).Int("max", hi).
			Int("default", def).Msg("int out of range; using default")
		return def
	}
	return v
}

// MayBool returns the value or def; an unparsable value warns and yields def
func (c Conf) MayBool(key string, def bool) bool {
	s, k := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def; an unparsable value warns and yields def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, k := c.lookup(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, _ := c.lookup(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
