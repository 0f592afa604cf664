package scoring

import "embed"

//go:embed models/default.yml
var modelFS embed.FS

// DefaultModel returns the built-in scoring model. It is used when no model
// path is configured and as the baseline most deployments start from.
func DefaultModel() (*Model, error) {
	return LoadModelFS(modelFS, "models/default.yml")
}
