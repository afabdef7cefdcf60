package env

const AppName = "tagscan"

// Set at build time with -ldflags "-X github.com/ostafen/tagscan/internal/env.Version=...".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
