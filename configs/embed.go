// Package configs provides embedded configuration templates for amankeys.
//
// Templates are embedded at build time so every distribution can write
// them without access to the source tree. They are used by:
//   - `amankeys config init` → user config at ~/.config/amankeys/config.yaml
//   - `amankeys config init --project` → .amankeys.yaml in the working directory
//
// Configuration hierarchy (see internal/config Load):
//  1. Hardcoded defaults (internal/config NewConfig)
//  2. User config (~/.config/amankeys/config.yaml)
//  3. Project config (.amankeys.yaml)
//  4. Environment variables (AMANKEYS_*)
package configs

import _ "embed"

// UserConfigTemplate is the template for user/machine-level configuration.
// Contains: filter thresholds, morphology and performance settings that
// apply to every project on this machine.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string

// ProjectConfigTemplate is the template for project-level configuration.
// Contains: project resources (lexicon, stop words, domain weights) and
// scoring defaults that are version-controlled with the project.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
