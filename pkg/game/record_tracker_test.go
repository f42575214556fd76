package game

import (
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/game/mocks"
)

// TestRecordTrackerAnnouncesOnce 超过纪录时只播放一次成就音效
func TestRecordTrackerAnnouncesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)

	scores := NewHighScoreManager(nil)
	scores.Submit(50, "old")
	rt := NewRecordTracker(scores, sound)
	w := newTestWorld()

	w.Score = 50
	rt.Observe(w)

	sound.EXPECT().PlaySound(components.SoundAchievement).Times(1)
	w.Score = 60
	rt.Observe(w)
	w.Score = 70
	rt.Observe(w)
}

// TestRecordTrackerGameOver 游戏结束只结算一次并保存纪录
func TestRecordTrackerGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)

	scores := NewHighScoreManager(nil)
	scores.Submit(500, "old")
	rt := NewRecordTracker(scores, sound)
	w := newTestWorld()
	w.Score = 30

	if rt.Observe(w) {
		t.Error("running session should not report game over")
	}

	w.GameOver = true
	sound.EXPECT().PlaySound(components.SoundExplosion).Return(true).Times(1)
	if !rt.Observe(w) {
		t.Error("first observe after game over should finish the session")
	}
	if rt.Observe(w) {
		t.Error("game over must be settled only once")
	}
	if !rt.Finished() {
		t.Error("Finished() should be true")
	}
	if scores.Best() != 500 {
		t.Errorf("lower score must not replace record, got %d", scores.Best())
	}
}

func TestRecordTrackerNewRecordOnGameOver(t *testing.T) {
	scores := NewHighScoreManager(nil)
	rt := NewRecordTracker(scores, nil)
	w := newTestWorld()
	w.Score = 90
	w.GameOver = true

	rt.Observe(w)

	if scores.Best() != 90 {
		t.Errorf("Best: got %d, want 90", scores.Best())
	}
	if scores.Record().SessionID != w.SessionID.String() {
		t.Error("record should reference the session")
	}

	rt.Reset()
	if rt.Finished() {
		t.Error("Reset() should start a new session")
	}
}

func TestSessionSummary(t *testing.T) {
	w := newTestWorld()
	w.Score = 120
	w.SpawnTicks = 33

	s := SessionSummary(w, 400)

	for _, want := range []string{w.SessionID.String(), "score 120", "record 400", "waves 33"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary %q missing %q", s, want)
		}
	}
}
