package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func restoreTuning(t *testing.T) {
	t.Helper()
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
		validate    func(*testing.T, Tuning)
	}{
		{
			name: "overrides keep unset fields",
			yamlContent: `
fear:
  scaredtime: 1.25
flashlight:
  knockbackforce: 3
`,
			validate: func(t *testing.T, tu Tuning) {
				if tu.Fear.ScaredTime != 1.25 {
					t.Errorf("expected scaredtime = 1.25, got %v", tu.Fear.ScaredTime)
				}
				if tu.Fear.Lives != Fear.Lives {
					t.Errorf("expected lives to stay %d, got %d", Fear.Lives, tu.Fear.Lives)
				}
				if tu.Flashlight.KnockbackForce != 3 {
					t.Errorf("expected knockbackforce = 3, got %v", tu.Flashlight.KnockbackForce)
				}
				if tu.Flashlight.BoxWidth != 5.3 {
					t.Errorf("expected default box width 5.3, got %v", tu.Flashlight.BoxWidth)
				}
			},
		},
		{
			name:        "negative duration",
			yamlContent: "flashlight:\n  chargetime: -1\n",
			errContains: "flashlight.chargetime",
		},
		{
			name:        "flicker slower than invincibility",
			yamlContent: "fear:\n  invincibletime: 0.5\n  flashinginvinciblerate: 0.6\n",
			errContains: "flashinginvinciblerate",
		},
		{
			name:        "no lives",
			yamlContent: "fear:\n  lives: 0\n",
			errContains: "fear.lives",
		},
		{
			name:        "broken yaml",
			yamlContent: "fear: [",
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu, err := ParseTuning([]byte(tt.yamlContent))
			if tt.errContains != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, tu)
		})
	}
}

func TestParseTuningLeavesGlobalMapsAlone(t *testing.T) {
	restoreTuning(t)
	before := len(Sound.Tones)
	_, err := ParseTuning([]byte("sound:\n  tones:\n    extra:\n      duration: 1\n  scaredsounds: []\n"))
	if err == nil {
		t.Fatal("expected validation error for empty scared sounds")
	}
	if len(Sound.Tones) != before {
		t.Errorf("expected %d tones, got %d", before, len(Sound.Tones))
	}
}

func TestLoadFileAppliesGlobals(t *testing.T) {
	restoreTuning(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  maxzoom: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Camera.MaxZoom != 2 {
		t.Errorf("expected maxzoom = 2, got %v", Camera.MaxZoom)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestDefaultsValidate(t *testing.T) {
	tu := CurrentTuning()
	if err := tu.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	restoreTuning(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("fear:\n  scaredtime: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("failed to watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("fear:\n  scaredtime: 0.75\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		reloaded, err := w.Poll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reloaded && Fear.ScaredTime == 0.75 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("expected scaredtime = 0.75 after reload, got %v", Fear.ScaredTime)
}
