package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"RTDBVIEW_API_KEY", "RTDBVIEW_EMAIL", "RTDBVIEW_PASSWORD", "RTDBVIEW_DATABASE_URL", "RTDBVIEW_PATH"} {
		t.Setenv(k, "")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.yaml")
	d := []byte(`webApiKey: key
viewerEmail: viewer@example.com
viewerPassword: secret
databaseUrl: https://demo-default-rtdb.firebaseio.com
`)
	if err := os.WriteFile(file, d, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RTDBVIEW_PATH", "zones")
	s, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}
	want := &Settings{
		WebAPIKey:      "key",
		ViewerEmail:    "viewer@example.com",
		ViewerPassword: "secret",
		DatabaseURL:    "https://demo-default-rtdb.firebaseio.com",
		DefaultPath:    "zones",
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := s.ValidateAuth(); err != nil {
		t.Error(err)
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), "sub", "settings.yaml")
	s := &Settings{WebAPIKey: "k", DatabaseURL: "https://x", DefaultPath: "stats"}
	if err := s.Save(file); err != nil {
		t.Fatal(err)
	}
	back, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestApplyEnvAndDefaults(t *testing.T) {
	s := &Settings{ViewerEmail: "a@b"}
	env := map[string]string{"RTDBVIEW_API_KEY": "k2", "RTDBVIEW_EMAIL": ""}
	s.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if s.WebAPIKey != "k2" || s.ViewerEmail != "a@b" {
		t.Errorf("got %+v", s)
	}
}

func TestValidate(t *testing.T) {
	s := &Settings{WebAPIKey: "k"}
	err := s.ValidateAuth()
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "missing setting: viewerEmail, viewerPassword" {
		t.Errorf("got %q", err.Error())
	}
	if err := s.ValidateDB(); !errors.Is(err, ErrMissing) {
		t.Errorf("got %v", err)
	}
}

func TestYAMLRedacts(t *testing.T) {
	s := &Settings{ViewerEmail: "e@x", ViewerPassword: "hunter2"}
	d, err := s.YAML(true)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(d), "hunter2") || !strings.Contains(string(d), "e@x") {
		t.Errorf("got %s", d)
	}
	if s.ViewerPassword != "hunter2" {
		t.Errorf("redaction modified the settings")
	}
}
