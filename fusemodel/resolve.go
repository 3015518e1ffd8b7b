package fusemodel

import (
	"log"
	"os"
	"strings"
)

// EnvVar is the environment variable that selects the active fuse model.
const EnvVar = "BH_FUSE_MODEL"

// ConfigError signals a configuration condition that is fatal to the
// caller — per SPEC_FULL.md §7, this is reserved for "the dispatcher was
// entered before its own one-shot resolver could run," a programming
// mistake rather than a user error. It is never raised by Resolve itself:
// Resolve always returns a concrete Model, recovering locally from any
// unrecognized environment value.
type ConfigError struct {
	msg string
}

// NewConfigError constructs a ConfigError carrying msg.
func NewConfigError(msg string) *ConfigError {
	return &ConfigError{msg: msg}
}

func (e *ConfigError) Error() string {
	return "bohrium: " + e.msg
}

// Resolve reads BH_FUSE_MODEL and returns the effective Model.
//
//   - Unset environment variable: returns Default.
//   - Recognized value (case-insensitive): returns the matching Model.
//   - Unrecognized value: logs a warning identifying the offending value,
//     sets BH_FUSE_MODEL to Text(Default) so child processes observe the
//     effective model, and returns Default.
func Resolve() Model {
	raw, ok := os.LookupEnv(EnvVar)
	if !ok {
		return Default
	}

	for _, model := range All() {
		if strings.EqualFold(raw, names[model]) {
			return model
		}
	}

	log.Printf("[FUSE] warning: unknown fuse model %q, using the default model %q instead", raw, Text(Default))
	os.Setenv(EnvVar, Text(Default))

	return Default
}
