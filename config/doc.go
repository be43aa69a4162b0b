// SPDX-License-Identifier: MIT

// Package config resolves the settings of a roadsearch run.
//
// Sources, lowest precedence first:
//
//  1. Default(): Malaga to Valladolid on data/spain.txt, both strategies.
//  2. A YAML file (gopkg.in/yaml.v3, unknown keys rejected).
//  3. A dotenv file read with github.com/joho/godotenv.
//  4. ROADSEARCH_* process environment variables.
//  5. Command-line flags, applied by cmd/roadsearch.
//
// Validate reports the first unusable field wrapped in ErrInvalid.
package config
