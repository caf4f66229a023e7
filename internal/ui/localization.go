package ui

import (
	"fmt"
	"time"

	"github.com/ytget/schulte-grid/internal/leaderboard"
	"github.com/ytget/schulte-grid/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyStart              = "start"
	KeyRestart            = "restart"
	KeyRules              = "rules"
	KeyRulesTitle         = "rules_title"
	KeyRulesBody          = "rules_body"
	KeyClose              = "close"
	KeySettings           = "settings"
	KeyGame               = "game"
	KeyLanguage           = "language"
	KeyShowRulesOnStart   = "show_rules_on_start"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyResetLeaderboard   = "reset_leaderboard"
	KeyResetConfirm       = "reset_confirm"
	KeyLeaderboard        = "leaderboard"
	KeyLeaderboardEmpty   = "leaderboard_empty"
	KeyRankFormat         = "rank_format"
	KeyStatusIdle         = "status_idle"
	KeyStatusCountdown    = "status_countdown"
	KeyStatusRunningFmt   = "status_running"
	KeyStatusFinished     = "status_finished"
	KeyResultTitle        = "result_title"
	KeyResultDurationFmt  = "result_duration"
	KeyResultRankFmt      = "result_rank"
	KeyResultNotRanked    = "result_not_ranked"
	KeyErrorSavingResults = "error_saving_results"
)

// Tier text keys are derived from the tier key
func tierLabelKey(tierKey string) string       { return "tier_" + tierKey }
func tierDescriptionKey(tierKey string) string { return "tier_" + tierKey + "_desc" }

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"zh": "中文",
	}
}

// Tier returns t with its label and description in the current language
func (l *Localization) Tier(t model.Tier) model.Tier {
	t.Label = l.GetText(tierLabelKey(t.Key))
	t.Description = l.GetText(tierDescriptionKey(t.Key))
	return t
}

// Scorer returns a leaderboard scorer producing localized tiers
func (l *Localization) Scorer() leaderboard.Scorer {
	return func(d time.Duration) model.Tier {
		return l.Tier(model.TierFor(d))
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Schulte Grid",
		KeyStart:              "Start",
		KeyRestart:            "Restart",
		KeyRules:              "Rules",
		KeyRulesTitle:         "How to play",
		KeyRulesBody:          "The grid holds the numbers 1 to 25 in random order.\n\nClick them in ascending order as fast as you can. The timer starts one second after you press Start and stops on the last number.\n\nA wrong click flashes red and does not count. Your five best times are kept on the leaderboard.",
		KeyClose:              "Close",
		KeySettings:           "Settings",
		KeyGame:               "Game",
		KeyLanguage:           "Language",
		KeyShowRulesOnStart:   "Show rules on start",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyResetLeaderboard:   "Reset leaderboard",
		KeyResetConfirm:       "Remove all saved times?",
		KeyLeaderboard:        "Leaderboard",
		KeyLeaderboardEmpty:   "No scores yet, take the challenge!",
		KeyRankFormat:         "#%d",
		KeyStatusIdle:         "Press Start to play",
		KeyStatusCountdown:    "Get ready...",
		KeyStatusRunningFmt:   "Find: %d",
		KeyStatusFinished:     "Done!",
		KeyResultTitle:        "Result",
		KeyResultDurationFmt:  "Time: %s",
		KeyResultRankFmt:      "New record, rank #%d",
		KeyResultNotRanked:    "Not in the top 5",
		KeyErrorSavingResults: "Failed to save leaderboard",

		tierLabelKey("excellent"):       "Excellent",
		tierDescriptionKey("excellent"): "Fast visual search, highly focused attention",
		tierLabelKey("good"):            "Good",
		tierDescriptionKey("good"):      "Good concentration, switches targets quickly",
		tierLabelKey("medium"):          "Medium",
		tierDescriptionKey("medium"):    "Normal range, adequate for everyday work and study",
		tierLabelKey("pass"):            "Pass",
		tierDescriptionKey("pass"):      "Attention slightly scattered, more training needed",
		tierLabelKey("fail"):            "Fail",
		tierDescriptionKey("fail"):      "Short attention span, easily distracted; consider professional advice",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:           "舒尔特方格",
		KeyStart:              "开始游戏",
		KeyRestart:            "重新开始",
		KeyRules:              "游戏规则",
		KeyRulesTitle:         "游戏规则",
		KeyRulesBody:          "方格中随机排列着数字 1 到 25。\n\n请按从小到大的顺序尽快点击。按下开始一秒后计时，点中最后一个数字时停止。\n\n点错的格子会闪红，不计入进度。最好的五次成绩会记录在排行榜中。",
		KeyClose:              "关闭",
		KeySettings:           "设置",
		KeyGame:               "游戏",
		KeyLanguage:           "语言",
		KeyShowRulesOnStart:   "启动时显示规则",
		KeySave:               "保存",
		KeyCancel:             "取消",
		KeySettingsSaved:      "设置已保存！",
		KeyResetLeaderboard:   "清空排行榜",
		KeyResetConfirm:       "确定删除所有成绩吗？",
		KeyLeaderboard:        "排行榜",
		KeyLeaderboardEmpty:   "暂无成绩，快来挑战吧！",
		KeyRankFormat:         "第%d名",
		KeyStatusIdle:         "点击开始游戏",
		KeyStatusCountdown:    "准备...",
		KeyStatusRunningFmt:   "请找: %d",
		KeyStatusFinished:     "完成！",
		KeyResultTitle:        "成绩",
		KeyResultDurationFmt:  "用时: %s",
		KeyResultRankFmt:      "新纪录，第%d名",
		KeyResultNotRanked:    "未进入前五名",
		KeyErrorSavingResults: "保存排行榜失败",

		tierLabelKey("excellent"):       "优秀",
		tierDescriptionKey("excellent"): "视觉搜索速度快，注意力高度集中",
		tierLabelKey("good"):            "良好",
		tierDescriptionKey("good"):      "专注力较好，能快速切换目标",
		tierLabelKey("medium"):          "中等",
		tierDescriptionKey("medium"):    "正常范围，适合日常工作/学习需求",
		tierLabelKey("pass"):            "及格",
		tierDescriptionKey("pass"):      "注意力略有分散，需加强训练",
		tierLabelKey("fail"):            "不合格",
		tierDescriptionKey("fail"):      "注意力持续时间短，易分心，可能需要专业干预",
	}
}
