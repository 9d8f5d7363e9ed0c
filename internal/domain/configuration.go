package domain

// Mode names accepted in a configuration file.
const (
	ModeRecurring   = "recurring"
	ModeConsolation = "consolation"
)

// Configuration is the top-level shape of a scenario file. Exactly one of
// Scenario or Consolation is set, matching Mode.
type Configuration struct {
	Mode        string               `yaml:"mode" json:"mode"`
	Scenario    *Scenario            `yaml:"scenario,omitempty" json:"scenario,omitempty"`
	Consolation *ConsolationScenario `yaml:"consolation,omitempty" json:"consolation,omitempty"`

	// HedgeRatio is the fixed ratio used by quote and simulate commands;
	// the optimizer sweeps its own candidates and ignores it.
	HedgeRatio float64 `yaml:"hedge_ratio" json:"hedge_ratio"`

	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
	Optimizer  OptimizerSettings  `yaml:"optimizer" json:"optimizer"`

	// Weights overrides the default scoring policy for the selected mode.
	Weights *ScoreWeights `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// SimulationSettings controls the standalone simulation command.
type SimulationSettings struct {
	Runs int `yaml:"runs" json:"runs"`
}

// OptimizerSettings controls the hedge-ratio sweep.
type OptimizerSettings struct {
	Steps       int `yaml:"steps" json:"steps"`
	RunsPerStep int `yaml:"runs_per_step" json:"runs_per_step"`
}
