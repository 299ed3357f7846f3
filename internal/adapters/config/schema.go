package config

// Mumfile represents the structure of the mum.yaml configuration file.
type Mumfile struct {
	Version string     `yaml:"version"`
	Storage StorageDTO `yaml:"storage"`
	Log     LogDTO     `yaml:"log"`
	UI      UIDTO      `yaml:"ui"`
}

// StorageDTO configures where the task list is persisted.
type StorageDTO struct {
	Path string `yaml:"path"`
}

// LogDTO configures the logger.
type LogDTO struct {
	JSON  bool   `yaml:"json"`
	Level string `yaml:"level"`
}

// UIDTO configures the interactive frontend.
type UIDTO struct {
	Mode   string  `yaml:"mode"`
	Prompt *string `yaml:"prompt"`
}
