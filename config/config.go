// Package config loads viewer settings: the Firebase web API key, the
// viewer account and the database to browse.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

const DefaultPath = "players"

var (
	ErrMissing = errors.New("missing setting")
)

type Settings struct {
	WebAPIKey      string `yaml:"webApiKey"`
	ViewerEmail    string `yaml:"viewerEmail"`
	ViewerPassword string `yaml:"viewerPassword"`
	DatabaseURL    string `yaml:"databaseUrl"`
	DefaultPath    string `yaml:"defaultPath"`
}

// DefaultFile is $XDG_CONFIG_HOME/rtdbview/settings.yaml or the
// platform equivalent.
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "settings.yaml"
	}
	return filepath.Join(dir, "rtdbview", "settings.yaml")
}

// Load reads settings from file, then applies environment overrides. A
// missing file is not an error when file is the default one.
func Load(file string) (*Settings, error) {
	s := &Settings{}
	explicit := file != ""
	if !explicit {
		file = DefaultFile()
	}
	d, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(d, s); err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", file, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("could not read settings: %w", err)
	}
	s.applyEnv(os.LookupEnv)
	if s.DefaultPath == "" {
		s.DefaultPath = DefaultPath
	}
	return s, nil
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) {
	for _, e := range []struct {
		name string
		dst  *string
	}{
		{"RTDBVIEW_API_KEY", &s.WebAPIKey},
		{"RTDBVIEW_EMAIL", &s.ViewerEmail},
		{"RTDBVIEW_PASSWORD", &s.ViewerPassword},
		{"RTDBVIEW_DATABASE_URL", &s.DatabaseURL},
		{"RTDBVIEW_PATH", &s.DefaultPath},
	} {
		if v, ok := lookup(e.name); ok && v != "" {
			*e.dst = v
		}
	}
}

// YAML encodes s. With redact the password is masked.
func (s *Settings) YAML(redact bool) ([]byte, error) {
	out := *s
	if redact && out.ViewerPassword != "" {
		out.ViewerPassword = "********"
	}
	return yaml.Marshal(&out)
}

// Save writes s to file as YAML, creating parent directories. An empty
// file means DefaultFile. The password is included, so the file is only
// readable by its owner.
func (s *Settings) Save(file string) error {
	if file == "" {
		file = DefaultFile()
	}
	d, err := s.YAML(false)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return err
	}
	return os.WriteFile(file, d, 0o600)
}

// ValidateAuth checks what sign in needs.
func (s *Settings) ValidateAuth() error {
	return missing(map[string]string{
		"webApiKey":      s.WebAPIKey,
		"viewerEmail":    s.ViewerEmail,
		"viewerPassword": s.ViewerPassword,
	})
}

// ValidateDB checks what database access needs.
func (s *Settings) ValidateDB() error {
	return missing(map[string]string{
		"databaseUrl": s.DatabaseURL,
	})
}

func missing(fields map[string]string) error {
	var names []string
	for _, name := range []string{"webApiKey", "viewerEmail", "viewerPassword", "databaseUrl"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissing, strings.Join(names, ", "))
}
