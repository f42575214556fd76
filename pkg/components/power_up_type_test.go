package components

import "testing"

// TestPowerUpTiersCoverAllTypes 验证两个频率档位恰好覆盖全部道具类型且互不重复
func TestPowerUpTiersCoverAllTypes(t *testing.T) {
	seen := make(map[PowerUpType]int)
	for _, p := range NormalTierPowerUps {
		seen[p]++
	}
	for _, p := range LowTierPowerUps {
		seen[p]++
	}

	for p := PowerUpShield; p <= PowerUpScoreLarge; p++ {
		if seen[p] != 1 {
			t.Errorf("power-up %s appears %d times across tiers, want 1", p, seen[p])
		}
	}
	if len(seen) != 7 {
		t.Errorf("tiers contain %d distinct types, want 7", len(seen))
	}
}

func TestFireModeShotType(t *testing.T) {
	tests := []struct {
		mode     FireMode
		expected ShotType
	}{
		{FireModeNormal, ShotNormal},
		{FireModeDouble, ShotDouble},
		{FireModeTriple, ShotTriple},
	}

	for _, tt := range tests {
		if got := tt.mode.ShotType(); got != tt.expected {
			t.Errorf("FireMode(%d).ShotType() = %s, want %s", tt.mode, got, tt.expected)
		}
	}
}
