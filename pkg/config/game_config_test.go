package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name:        "empty document keeps defaults",
			yamlContent: ``,
			wantErr:     false,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Player.BaseSpeed != 360 {
					t.Errorf("expected default baseSpeed = 360, got %v", cfg.Player.BaseSpeed)
				}
				if cfg.Spawn.MaxEnemies != 25 {
					t.Errorf("expected default maxEnemies = 25, got %v", cfg.Spawn.MaxEnemies)
				}
			},
		},
		{
			name: "partial override",
			yamlContent: `
world:
  width: 800
  height: 600
player:
  fireRate: 10
  bombs: 2
collision:
  bulletEnemy: -5
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.World.Width != 800 || cfg.World.Height != 600 {
					t.Errorf("expected world 800x600, got %vx%v", cfg.World.Width, cfg.World.Height)
				}
				if cfg.Player.FireRate != 10 {
					t.Errorf("expected fireRate = 10, got %v", cfg.Player.FireRate)
				}
				if cfg.Player.Bombs != 2 {
					t.Errorf("expected bombs = 2, got %d", cfg.Player.Bombs)
				}
				if cfg.Collision.BulletEnemy != -5 {
					t.Errorf("expected bulletEnemy offset = -5, got %v", cfg.Collision.BulletEnemy)
				}
				// 未覆盖的字段保持默认
				if cfg.World.BackgroundSpeed != 140 {
					t.Errorf("expected default backgroundSpeed = 140, got %v", cfg.World.BackgroundSpeed)
				}
			},
		},
		{
			name:        "invalid yaml",
			yamlContent: "world: [unclosed",
			wantErr:     true,
			errContains: "failed to parse",
		},
		{
			name: "zero fire rate",
			yamlContent: `
player:
  fireRate: 0
`,
			wantErr:     true,
			errContains: "fireRate",
		},
		{
			name: "shoot chance out of range",
			yamlContent: `
enemy:
  shootChance: 1.5
`,
			wantErr:     true,
			errContains: "shootChance",
		},
		{
			name: "inverted power-up interval",
			yamlContent: `
powerUp:
  intervalMin: 20
  intervalMax: 10
`,
			wantErr:     true,
			errContains: "interval",
		},
		{
			name: "enemy size larger than world",
			yamlContent: `
world:
  width: 90
spawn:
  maxSize: 100
`,
			wantErr:     true,
			errContains: "maxSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "game.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Player.Lives != 5 {
		t.Errorf("expected lives = 5, got %d", cfg.Player.Lives)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

// TestBundledGameConfigMatchesDefaults 验证随包发布的 data/game.yaml 与默认值一致
func TestBundledGameConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig("../../data/game.yaml")
	if err != nil {
		t.Fatalf("failed to load bundled config: %v", err)
	}
	def := DefaultGameConfig()

	if math.Abs(cfg.World.MaxFrameDelta-def.World.MaxFrameDelta) > 1e-6 {
		t.Errorf("maxFrameDelta: got %v, want %v", cfg.World.MaxFrameDelta, def.World.MaxFrameDelta)
	}
	cfg.World.MaxFrameDelta = def.World.MaxFrameDelta

	if *cfg != *def {
		t.Errorf("bundled config differs from defaults:\n got  %+v\n want %+v", *cfg, *def)
	}
}
