package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("world:\n  width: 640\n  height: 480\n")},
	}
}

// reset 恢复未初始化状态，避免影响其他测试
func reset(t *testing.T) {
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Expected Init(nil) to leave the package uninitialized")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset(t)
	initialized = false

	_, err := ReadFile("data/game.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	reset(t)
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"data path", "data/game.yaml", false},
		{"dot prefix", "./data/game.yaml", false},
		{"backslash separators", filepath.FromSlash("data/game.yaml"), false},
		{"unknown prefix", "assets/game.yaml", true},
		{"missing file", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}

	if !Exists("data/game.yaml") || Exists("data/missing.yaml") {
		t.Error("Exists returned an unexpected result")
	}
}

func TestLoadGameConfig(t *testing.T) {
	reset(t)

	// 未初始化：默认配置
	initialized = false
	cfg, err := LoadGameConfig("")
	if err != nil || cfg.World.Width != 1120 {
		t.Fatalf("uninitialized: cfg=%v err=%v", cfg, err)
	}

	// 嵌入配置覆盖默认值
	Init(testFS())
	cfg, err = LoadGameConfig("")
	if err != nil {
		t.Fatalf("embedded config: %v", err)
	}
	if cfg.World.Width != 640 || cfg.World.Height != 480 {
		t.Errorf("world size: got %vx%v, want 640x480", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Player.Lives != 3 {
		t.Errorf("missing fields should keep defaults, lives=%d", cfg.Player.Lives)
	}

	// 外部文件优先
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadGameConfig(path)
	if err != nil || cfg.Player.Lives != 5 {
		t.Errorf("override: cfg=%v err=%v", cfg, err)
	}

	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing override file should fail")
	}
}
