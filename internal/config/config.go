package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const profileFile = ".dropdown/profile.json"

// Profile holds the demo program's persisted settings.
type Profile struct {
	Placeholder  string   `json:"placeholder,omitempty"`
	Variant      string   `json:"variant,omitempty"`
	Environments []string `json:"environments,omitempty"`
	Regions      []string `json:"regions,omitempty"`
	Tiers        []string `json:"tiers,omitempty"`
}

// Default returns the profile used when nothing is saved on disk.
func Default() *Profile {
	return &Profile{
		Placeholder:  "Choose…",
		Variant:      "regular",
		Environments: []string{"Development", "Staging", "Production"},
		Regions:      []string{"us-east-1", "us-west-2", "eu-central-1", "ap-southeast-2"},
		Tiers:        []string{"Free", "Team", "Enterprise"},
	}
}

// Load reads the profile from disk, falling back to defaults when no profile
// has been saved yet.
func Load(baseDir string) (*Profile, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, profileFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	p := Default()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the profile to disk.
func Save(baseDir string, p *Profile) error {
	path := filepath.Join(baseDir, profileFile)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
