// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the configuration reads.
const EnvPrefix = "ROADSEARCH_"

// ReadEnvFile parses a dotenv file without touching the process environment.
// An empty path or a missing file yields an empty map.
func ReadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	vals, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: env file %s: %w", path, err)
	}

	return vals, nil
}

// ApplyEnv overlays ROADSEARCH_* values reported by lookup onto c.
// Strategies are comma separated; booleans use strconv.ParseBool.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %v", ErrInvalid, EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}

	str("DATA", &c.Data)
	str("START", &c.Start)
	str("GOAL", &c.Goal)
	str("FRONTIER", &c.Frontier)
	str("LOG_LEVEL", &c.LogLevel)
	str("COLOR", &c.Color)

	if v, ok := lookup(EnvPrefix + "STRATEGIES"); ok {
		c.Strategies = c.Strategies[:0]
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Strategies = append(c.Strategies, s)
			}
		}
	}
	if v, ok := lookup(EnvPrefix + "CAPACITY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sCAPACITY: %v", ErrInvalid, EnvPrefix, err)
		}
		c.Capacity = n
	}
	if v, ok := lookup(EnvPrefix + "UNKNOWN_HEURISTIC"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sUNKNOWN_HEURISTIC: %v", ErrInvalid, EnvPrefix, err)
		}
		c.UnknownHeuristic = n
	}

	for name, dst := range map[string]*bool{
		"SKIP_STALE":      &c.SkipStale,
		"CHECK_HEURISTIC": &c.CheckHeuristic,
		"STRICT":          &c.Strict,
		"QUIET":           &c.Quiet,
	} {
		if err := boolean(name, dst); err != nil {
			return err
		}
	}

	return nil
}
