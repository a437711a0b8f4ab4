package config

import (
	"fmt"

	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/sdk/environment"
	"github.com/jrazmi/todoview/sdk/logger"
	"github.com/jrazmi/todoview/sdk/telemetry"
)

// site wide globals.
const (
	AppName  = "TODOVIEW"
	ApiRoute = "/api"
)

// Seed sources.
const (
	SourceSample   = "sample"
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
	SourceMySQL    = "mysql"
)

// Seed selects where the task list is read from at startup.
type Seed struct {
	Source string `env:"SOURCE" default:"sample"`
	File   string `env:"SEED_FILE"`
	Table  string `env:"SEED_TABLE" default:"todo_todo"`
}

// LoadSeed reads <prefix>_SOURCE, <prefix>_SEED_FILE and <prefix>_SEED_TABLE.
func LoadSeed(prefix string) (Seed, error) {
	var s Seed
	if err := environment.ParseEnvTags(prefix, &s); err != nil {
		return Seed{}, fmt.Errorf("parsing seed config: %w", err)
	}
	return s, nil
}

// Repositories are the repositories this instance of todoview serves.
type Repositories struct {
	Todo *todosrepo.Repository
}

// Todoview is the overall configuration for the web application.
type Todoview struct {
	Build     string
	Logger    *logger.Logger
	Telemetry telemetry.Telemetry

	Repositories Repositories
	TaskCount    int
}
