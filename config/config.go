package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SurfaceConfig maps a hardware control surface onto menu operations. The
// defaults match a generic two-encoder box: one encoder navigates, one edits
// the value, two buttons select and exit.
type SurfaceConfig struct {
	PortName    string `json:"portName"`
	AutoConnect bool   `json:"autoConnect"`
	Channel     uint8  `json:"channel,omitempty"`

	NavigateCC uint8 `json:"navigateCC"`
	ValueCC    uint8 `json:"valueCC"`
	SelectNote uint8 `json:"selectNote"`
	ExitNote   uint8 `json:"exitNote"`

	// Relative marks encoders that send signed two's-complement offsets
	// around 64 instead of absolute 0-127 positions.
	Relative bool `json:"relative,omitempty"`
}

// UIConfig stores UI preferences
type UIConfig struct {
	Palette   string `json:"palette,omitempty"` // path to a .gpl file
	ShowHelp  bool   `json:"showHelp,omitempty"`
	LastPatch string `json:"lastPatch,omitempty"` // filename of the last loaded patch
}

// Config is the main configuration structure
type Config struct {
	Surfaces []SurfaceConfig `json:"surfaces,omitempty"`
	UI       UIConfig        `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Surfaces: []SurfaceConfig{
			{
				PortName:    "Arturia BeatStep",
				AutoConnect: true,
				NavigateCC:  114,
				ValueCC:     115,
				SelectNote:  44,
				ExitNote:    45,
				Relative:    true,
			},
		},
		UI: UIConfig{
			Palette:  "palettes/plasma.gpl",
			ShowHelp: true,
		},
	}
}

// Dir returns the config directory path
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "synthmenu"), nil
}

// Path returns the full path to config.json
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// FindSurface finds a surface config by port name
func (c *Config) FindSurface(portName string) *SurfaceConfig {
	for i := range c.Surfaces {
		if c.Surfaces[i].PortName == portName {
			return &c.Surfaces[i]
		}
	}
	return nil
}

// AddSurface adds or updates a surface config
func (c *Config) AddSurface(s SurfaceConfig) {
	for i := range c.Surfaces {
		if c.Surfaces[i].PortName == s.PortName {
			c.Surfaces[i] = s
			return
		}
	}
	c.Surfaces = append(c.Surfaces, s)
}

// AutoConnectSurfaces returns surfaces with autoConnect enabled
func (c *Config) AutoConnectSurfaces() []SurfaceConfig {
	var result []SurfaceConfig
	for _, s := range c.Surfaces {
		if s.AutoConnect {
			result = append(result, s)
		}
	}
	return result
}
