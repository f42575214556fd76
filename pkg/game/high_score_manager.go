package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScore 历史最高分记录
type HighScore struct {
	Score      int       `yaml:"score"`
	SessionID  string    `yaml:"sessionId"`  // 创下纪录的那一局
	AchievedAt time.Time `yaml:"achievedAt"` // 创下纪录的时间
}

const (
	scoresObject   = "scores"
	scoresProperty = "record"
)

// HighScoreManager 最高分的读取与保存
// gdataManager 为 nil 时纪录只保存在内存中
type HighScoreManager struct {
	gdataManager *gdata.Manager
	record       HighScore
}

// NewHighScoreManager 创建纪录管理器并加载已保存的纪录
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	hm := &HighScoreManager{gdataManager: gdataManager}
	if err := hm.load(); err != nil {
		log.Printf("[HighScoreManager] Warning: %v (starting from 0)", err)
	}
	return hm
}

func (hm *HighScoreManager) load() error {
	if hm.gdataManager == nil || !hm.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	data, err := hm.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}

	var record HighScore
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if record.Score < 0 {
		return fmt.Errorf("invalid high score %d", record.Score)
	}

	hm.record = record
	return nil
}

// Best 返回当前最高分
func (hm *HighScoreManager) Best() int {
	return hm.record.Score
}

// Record 返回完整的纪录
func (hm *HighScoreManager) Record() HighScore {
	return hm.record
}

// Submit 提交一局的分数，超过纪录时更新并保存
//
// 参数：
//   - score: 本局分数
//   - sessionID: 本局标识
//
// 返回：
//   - bool: 是否打破纪录
//   - error: 保存失败（内存中的纪录仍已更新）
func (hm *HighScoreManager) Submit(score int, sessionID string) (bool, error) {
	if score <= hm.record.Score {
		return false, nil
	}

	hm.record = HighScore{
		Score:      score,
		SessionID:  sessionID,
		AchievedAt: time.Now().UTC(),
	}
	if hm.gdataManager == nil {
		return true, nil
	}

	data, err := yaml.Marshal(&hm.record)
	if err != nil {
		return true, fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := hm.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return true, fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[HighScoreManager] New record %d (session %s)", score, sessionID)
	return true, nil
}
