package app

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigOrDefault(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, ConfigFile)

	// first load generates the default config file.
	conf, err := LoadConfigOrDefault(file)
	if !errors.Is(err, ErrDefaultConfigGenerated) {
		t.Fatalf("first load error = %v, want ErrDefaultConfigGenerated", err)
	}
	if !reflect.DeepEqual(conf, NewConfig()) {
		t.Fatalf("generated config = %+v, want %+v", conf, NewConfig())
	}

	// second load reads the generated file back.
	conf2, err := LoadConfigOrDefault(file)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(conf2, conf) {
		t.Fatalf("reloaded config = %+v, want %+v", conf2, conf)
	}
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, ConfigFile)
	if err := os.WriteFile(file, []byte("dpi = 3.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := LoadConfigOrDefault(file)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Dpi != 3.0 {
		t.Errorf("Dpi = %v, want 3.0", conf.Dpi)
	}
	if conf.Width != DefaultWidth || conf.Height != DefaultHeight {
		t.Errorf("size = (%v, %v), want defaults (%v, %v)", conf.Width, conf.Height, float64(DefaultWidth), float64(DefaultHeight))
	}
	if conf.LogFile != DefaultLogFile || conf.LogLevel != LogLevelInfo {
		t.Errorf("log config = (%v, %v), want defaults", conf.LogFile, conf.LogLevel)
	}
}

func TestLoadConfigCannotCreate(t *testing.T) {
	// missing parent directory fails the default config write.
	file := filepath.Join(t.TempDir(), "missing", ConfigFile)
	if _, err := LoadConfigOrDefault(file); err == nil || errors.Is(err, ErrDefaultConfigGenerated) {
		t.Fatalf("load with missing parent dir = %v, want creation error", err)
	}
}
