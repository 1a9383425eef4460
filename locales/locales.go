// Package locales embeds the message bundles for user-facing output.
package locales

import "embed"

//go:embed *.toml
var FS embed.FS
