package contagiongo

import (
	"fmt"
	"strings"
)

// RunConfig contains parameters to build and run a contagiongo simulation,
// loaded from a TOML file the way the teacher's SingleHostConfig and
// EvoEpiConfig are (single_host_config_loader.go, evoepi_config_loader.go).
type RunConfig struct {
	GraphPath string `toml:"graph_path"`

	Engine string `toml:"engine"` // "event_driven" | "gillespie"
	Model  string `toml:"model"`  // "sir" | "sis"

	Tau   float64 `toml:"tau"`
	Gamma float64 `toml:"gamma"`
	Tmax  float64 `toml:"tmax"`

	InitialInfecteds []int   `toml:"initial_infecteds"`
	Rho              float64 `toml:"rho"`

	TransmissionWeight string `toml:"transmission_weight"`
	RecoveryWeight     string `toml:"recovery_weight"`

	ReturnFullData bool `toml:"return_full_data"`

	LoggerType string `toml:"logger"` // "csv" | "sqlite"
	LogPath    string `toml:"log_path"`

	NumInstances uint  `toml:"num_instances"`
	Seed         int64 `toml:"seed"`

	validated bool
}

// Validate checks the validity of the configuration, enforcing the
// mutually-exclusive initial-condition rule from spec.md section 6 before
// any simulation state is built (spec.md section 7's configuration-error
// propagation policy).
func (c *RunConfig) Validate() error {
	if len(c.InitialInfecteds) > 0 && c.Rho > 0 {
		return ErrConflictingInitialCondition
	}
	switch strings.ToLower(c.Engine) {
	case "event_driven", "gillespie":
	default:
		return fmt.Errorf(UnrecognizedKeywordError, c.Engine, "engine")
	}
	switch strings.ToLower(c.Model) {
	case "sir", "sis":
	default:
		return fmt.Errorf(UnrecognizedKeywordError, c.Model, "model")
	}
	switch strings.ToLower(c.LoggerType) {
	case "", "csv", "sqlite":
	default:
		return fmt.Errorf(UnrecognizedKeywordError, c.LoggerType, "logger")
	}
	if c.Tmax <= 0 {
		return fmt.Errorf(InvalidFloatParameterError, "tmax", c.Tmax, "must be positive")
	}
	if c.NumInstances == 0 {
		c.NumInstances = 1
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	c.validated = true
	return nil
}

// InitialCondition adapts the loaded config into the InitialCondition type
// the engines accept.
func (c *RunConfig) InitialCondition() InitialCondition {
	return InitialCondition{InitialInfecteds: c.InitialInfecteds, Rho: c.Rho}
}

// UnrecognizedKeywordError mirrors the teacher's single_host_config_loader.go
// convention of a shared "%s is not a recognized value for %s" sentinel.
const UnrecognizedKeywordError = "%s is not a recognized value for %s"
