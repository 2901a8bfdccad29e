package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadDefaults(t *testing.T) {
	cfg, err := Read("")
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if cfg.Database != "" {
		t.Errorf("got database %q; want empty", cfg.Database)
	}
	if cfg.TextNative {
		t.Error("got text_native true; want false")
	}
	if cfg.BusyTimeoutMS != 10000 {
		t.Errorf("got busy_timeout_ms %d; want 10000", cfg.BusyTimeoutMS)
	}
	if cfg.Color != "auto" {
		t.Errorf("got color %q; want auto", cfg.Color)
	}
}

func TestReadMissingFile(t *testing.T) {
	cfg, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if cfg.BusyTimeoutMS != 10000 {
		t.Errorf("got busy_timeout_ms %d; want default 10000", cfg.BusyTimeoutMS)
	}
}

func TestReadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "litestore.json")
	content := `{"database":"/tmp/x.db","text_native":true,"busy_timeout_ms":250,"color":"never"}`
	if err := os.WriteFile(filename, []byte(content), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	cfg, err := Read(filename)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if cfg.Database != "/tmp/x.db" {
		t.Errorf("got database %q; want /tmp/x.db", cfg.Database)
	}
	if !cfg.TextNative {
		t.Error("got text_native false; want true")
	}
	if cfg.BusyTimeoutMS != 250 {
		t.Errorf("got busy_timeout_ms %d; want 250", cfg.BusyTimeoutMS)
	}
	if cfg.Color != "never" {
		t.Errorf("got color %q; want never", cfg.Color)
	}
}

func TestReadMalformedFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "litestore.json")
	if err := os.WriteFile(filename, []byte("{"), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	if _, err := Read(filename); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
