package contagiongo

import "testing"

func validBaseConfig() RunConfig {
	return RunConfig{
		Engine: "event_driven",
		Model:  "sir",
		Tau:    1.0,
		Gamma:  1.0,
		Tmax:   10,
	}
}

func TestRunConfig_Validate_AcceptsWellFormedConfig(t *testing.T) {
	c := validBaseConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "validating a well-formed config", err)
	}
	if c.NumInstances != 1 {
		t.Errorf(UnequalIntParameterError, "default NumInstances", 1, int(c.NumInstances))
	}
	if c.Seed != 1 {
		t.Errorf(UnequalIntParameterError, "default Seed", 1, int(c.Seed))
	}
}

func TestRunConfig_Validate_ConflictingInitialCondition(t *testing.T) {
	c := validBaseConfig()
	c.InitialInfecteds = []int{0, 1}
	c.Rho = 0.2
	if err := c.Validate(); err != ErrConflictingInitialCondition {
		t.Errorf(UnexpectedErrorWhileError, "validating a config with both initial_infecteds and rho set", err)
	}
}

func TestRunConfig_Validate_UnrecognizedEngine(t *testing.T) {
	c := validBaseConfig()
	c.Engine = "quantum"
	if err := c.Validate(); err == nil {
		t.Errorf(ExpectedErrorWhileError, "validating a config with an unrecognized engine keyword")
	}
}

func TestRunConfig_Validate_UnrecognizedModel(t *testing.T) {
	c := validBaseConfig()
	c.Model = "seir"
	if err := c.Validate(); err == nil {
		t.Errorf(ExpectedErrorWhileError, "validating a config with an unrecognized model keyword")
	}
}

func TestRunConfig_Validate_UnrecognizedLogger(t *testing.T) {
	c := validBaseConfig()
	c.LoggerType = "json"
	if err := c.Validate(); err == nil {
		t.Errorf(ExpectedErrorWhileError, "validating a config with an unrecognized logger keyword")
	}
}

func TestRunConfig_Validate_EmptyLoggerAllowed(t *testing.T) {
	c := validBaseConfig()
	c.LoggerType = ""
	if err := c.Validate(); err != nil {
		t.Errorf(UnexpectedErrorWhileError, "validating a config with no logger configured", err)
	}
}

func TestRunConfig_Validate_NonPositiveTmax(t *testing.T) {
	c := validBaseConfig()
	c.Tmax = 0
	if err := c.Validate(); err == nil {
		t.Errorf(ExpectedErrorWhileError, "validating a config with tmax <= 0")
	}
}

func TestRunConfig_InitialCondition_AdaptsFields(t *testing.T) {
	c := validBaseConfig()
	c.InitialInfecteds = []int{2, 4}
	ic := c.InitialCondition()
	if len(ic.InitialInfecteds) != 2 {
		t.Errorf(UnequalIntParameterError, "adapted InitialCondition infected count", 2, len(ic.InitialInfecteds))
	}
}
