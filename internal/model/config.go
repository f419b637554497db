package model

// Config represents the root structure loaded from pearlcfg.yaml.
// It contains output defaults, logging settings and the known devices.
type Config struct {
	Output    string         `mapstructure:"output" yaml:"output" validate:"oneof=json yaml query response table"`
	LogLevel  string         `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string         `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
	Devices   []DeviceConfig `mapstructure:"devices" yaml:"devices" validate:"dive"`
}

// DeviceConfig describes a single device reachable through its HTTP admin API.
type DeviceConfig struct {
	Name     string `mapstructure:"name" yaml:"name" validate:"required"`
	Address  string `mapstructure:"address" yaml:"address" validate:"required,hostname_port|ip|hostname"`
	Scheme   string `mapstructure:"scheme" yaml:"scheme" validate:"omitempty,oneof=http https"`
	Channels int    `mapstructure:"channels" yaml:"channels" validate:"min=1"`
}
