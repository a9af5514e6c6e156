package main

import "os"

// Environment variable fallbacks for asset overrides.
const (
	envStyle    = "MD2SITE_STYLE"
	envTemplate = "MD2SITE_TEMPLATE"
)

// applyEnvFallbacks fills unset flags from the environment. Explicit flags
// win over environment variables.
func applyEnvFallbacks(flags *cliFlags) {
	if flags.style == "" {
		flags.style = os.Getenv(envStyle)
	}
	if flags.template == "" {
		flags.template = os.Getenv(envTemplate)
	}
}
