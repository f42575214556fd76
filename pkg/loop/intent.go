package loop

// IntentKind 输入意图类型
type IntentKind int

const (
	IntentLeft    IntentKind = iota // 左移（按下/松开）
	IntentRight                     // 右移（按下/松开）
	IntentShoot                     // 射击（按下/松开）
	IntentPause                     // 切换暂停
	IntentBomb                      // 引爆炸弹
	IntentRestart                   // 重新开始
)

// String 返回意图名称
func (k IntentKind) String() string {
	switch k {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentShoot:
		return "shoot"
	case IntentPause:
		return "pause"
	case IntentBomb:
		return "bomb"
	case IntentRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Intent 一次输入事件
// Active 只对左移、右移、射击有意义；其余类型是一次性触发
type Intent struct {
	Kind   IntentKind
	Active bool
}
