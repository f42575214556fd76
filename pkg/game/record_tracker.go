package game

import (
	"fmt"
	"log"

	"github.com/decker502/skyshooter/pkg/components"
)

// RecordTracker 跟踪一局中的纪录事件
// 在每帧模拟推进之后调用 Observe：
//   - 分数第一次超过历史最高分时播放一次成就音效
//   - 游戏结束时只结算一次：播放爆炸音效并提交分数
type RecordTracker struct {
	scores *HighScoreManager
	sound  SoundPlayer

	recordAnnounced bool
	finished        bool
}

// NewRecordTracker 创建纪录跟踪器
//
// 参数：
//   - scores: 纪录管理器
//   - sound: 音效播放接口，nil 时静音
func NewRecordTracker(scores *HighScoreManager, sound SoundPlayer) *RecordTracker {
	if sound == nil {
		sound = NopSound{}
	}
	return &RecordTracker{scores: scores, sound: sound}
}

// Reset 开始新的一局
func (rt *RecordTracker) Reset() {
	rt.recordAnnounced = false
	rt.finished = false
}

// Best 返回 HUD 显示的纪录（本局结束前不会被本局分数刷新）
func (rt *RecordTracker) Best() int {
	return rt.scores.Best()
}

// Observe 检查本帧的纪录事件
//
// 返回：
//   - bool: 本帧是否完成了游戏结束结算
func (rt *RecordTracker) Observe(w *World) bool {
	if !rt.recordAnnounced && w.Score > rt.scores.Best() {
		rt.recordAnnounced = true
		rt.sound.PlaySound(components.SoundAchievement)
	}

	if !w.GameOver || rt.finished {
		return false
	}
	rt.finished = true
	rt.sound.PlaySound(components.SoundExplosion)

	newRecord, err := rt.scores.Submit(w.Score, w.SessionID.String())
	if err != nil {
		log.Printf("[RecordTracker] Warning: %v", err)
	}
	log.Printf("[RecordTracker] Game over: %s (new record: %v)", SessionSummary(w, rt.scores.Best()), newRecord)
	return true
}

// Finished 本局是否已结算
func (rt *RecordTracker) Finished() bool {
	return rt.finished
}

// SessionSummary 一局的文字总结，用于日志和剪贴板
func SessionSummary(w *World, best int) string {
	return fmt.Sprintf("Sky Shooter session %s: score %d, record %d, waves %d",
		w.SessionID, w.Score, best, w.SpawnTicks)
}
