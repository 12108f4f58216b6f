package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if got := cfg.Params(); got != flock.DefaultParams() {
		t.Errorf("Params() = %+v; want %+v", got, flock.DefaultParams())
	}
	if got := cfg.InitialWeights(); got != flock.DefaultWeights() {
		t.Errorf("InitialWeights() = %+v; want %+v", got, flock.DefaultWeights())
	}
	if cfg.FrameDelayMs != 30 {
		t.Errorf("FrameDelayMs = %d; want 30", cfg.FrameDelayMs)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, cfg *Config)
		wantErr string
	}{
		{
			name:    "JSON overrides defaults",
			file:    "config.json",
			content: `{"numBoids": 10, "avoidanceMode": "nearest", "seed": 42, "cohesion": 0.5}`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.NumBoids != 10 || cfg.AvoidanceMode != "nearest" || cfg.Seed != 42 || cfg.Cohesion != 0.5 {
					t.Errorf("overrides not applied: %+v", cfg)
				}
				if cfg.WorldWidth != 1080 || cfg.MaxSpeed != 2 {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name:    "JSON unknown key",
			file:    "config.json",
			content: `{"numBoids": 10, "turnFactor": 0.2}`,
			wantErr: "config validation failed",
		},
		{
			name:    "JSON out of range",
			file:    "config.json",
			content: `{"maxSpeed": -1}`,
			wantErr: "config validation failed",
		},
		{
			name:    "JSON unknown mode",
			file:    "config.json",
			content: `{"jitterMode": "gaussian"}`,
			wantErr: "config validation failed",
		},
		{
			name:    "JSON malformed",
			file:    "config.json",
			content: `{"numBoids": `,
			wantErr: "failed to decode config json",
		},
		{
			name: "TOML overrides defaults",
			file: "config.toml",
			content: `numBoids = 12
jitterMode = "perlin"
followCursor = true
frameDelayMs = 16
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.NumBoids != 12 || cfg.JitterMode != "perlin" || !cfg.FollowCursor || cfg.FrameDelayMs != 16 {
					t.Errorf("overrides not applied: %+v", cfg)
				}
				if cfg.ProximityRadius != 50 {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name:    "TOML unknown key",
			file:    "config.toml",
			content: "numBoids = 12\nvisualRange = 70.0\n",
			wantErr: "unknown keys visualRange",
		},
		{
			name:    "TOML out of range",
			file:    "config.toml",
			content: "smoothingFactor = 2.0\n",
			wantErr: "config validation failed",
		},
		{
			name:    "TOML malformed",
			file:    "config.toml",
			content: "numBoids = = 3\n",
			wantErr: "failed to decode config toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v; want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_UnknownFormat(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "config.yaml", "numBoids: 3\n"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadConfig() error = %v; want ErrUnknownFormat", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig() error = %v; want os.ErrNotExist", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumBoids = -3
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted a negative population")
	}

	cfg = DefaultConfig()
	cfg.FrameDelayMs = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted a zero frame delay")
	}
}
