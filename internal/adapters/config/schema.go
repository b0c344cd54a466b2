package config

// Configfile represents the structure of the makerun.yaml configuration file.
type Configfile struct {
	Version       string `yaml:"version"`
	Log           LogDTO `yaml:"log"`
	PropagateExit *bool  `yaml:"propagate_exit"`
	History       *bool  `yaml:"history"`
	StateDir      string `yaml:"state_dir"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}
