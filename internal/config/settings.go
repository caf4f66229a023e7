package config

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"

	"github.com/ytget/schulte-grid/internal/leaderboard"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeyShowRulesOnStart = "show_rules_on_start"
	KeyLeaderboard      = "schulteLeaderboard"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultShowRulesOnStart = true
)

// Supported languages
const (
	LanguageSystem  = "system"
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	language := s.app.Preferences().String(KeyLanguage)
	if language == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return language
}

// SetLanguage sets the application language. Unknown values fall back to the system language.
func (s *Settings) SetLanguage(language string) {
	if _, ok := s.GetLanguageOptions()[language]; !ok {
		language = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, language)
}

// ResolvedLanguage returns the concrete language to display, resolving
// "system" from the OS locale
func (s *Settings) ResolvedLanguage() string {
	language := s.GetLanguage()
	if language != LanguageSystem {
		return language
	}
	return languageForLocale(string(lang.SystemLocale()))
}

func languageForLocale(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), LanguageChinese) {
		return LanguageChinese
	}
	return LanguageEnglish
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		LanguageSystem:  "System Default",
		LanguageEnglish: "English",
		LanguageChinese: "中文",
	}
}

// GetShowRulesOnStart returns whether the rules dialog opens at launch
func (s *Settings) GetShowRulesOnStart() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowRulesOnStart, DefaultShowRulesOnStart)
}

// SetShowRulesOnStart sets whether the rules dialog opens at launch
func (s *Settings) SetShowRulesOnStart(show bool) {
	s.app.Preferences().SetBool(KeyShowRulesOnStart, show)
}

// LeaderboardStorage returns the backend the leaderboard persists to
func (s *Settings) LeaderboardStorage() leaderboard.Storage {
	return s.app.Preferences()
}

// NewLeaderboardStore creates a leaderboard store backed by the preferences
// and loads the saved records
func (s *Settings) NewLeaderboardStore() *leaderboard.Store {
	store := leaderboard.NewStore(s.LeaderboardStorage(), KeyLeaderboard)
	store.Load()
	return store
}
