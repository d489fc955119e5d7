package config

// Configfile represents the structure of the pdfdiff.yaml configuration file.
type Configfile struct {
	Version     string            `yaml:"version"`
	Interpreter string            `yaml:"interpreter"`
	Timeout     string            `yaml:"timeout"`
	WorkingDir  string            `yaml:"working_dir"`
	Module      string            `yaml:"module"`
	Marker      string            `yaml:"marker"`
	Env         map[string]string `yaml:"env"`
	Log         LogDTO            `yaml:"log"`
}

// LogDTO represents the logging section of the configuration.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
