package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// ServerAddr is the base URL of a running matchmaking server, e.g.
	// http://localhost:8080. Scenarios are skipped when it is unset.
	ServerAddr string `envconfig:"SERVER_ADDR"`
	// E2E_DEBUG_JSON allows dumping full request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// MatchWait bounds how long a scenario waits for a match_found frame.
	MatchWaitSeconds int `envconfig:"E2E_MATCH_WAIT_SECONDS" default:"90"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
