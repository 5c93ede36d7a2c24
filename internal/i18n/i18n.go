// Package i18n holds the interface translations and the persisted language preference.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/logger"
	"github.com/julianstephens/studydash/internal/storage"
)

// Language is a two letter interface language code.
type Language string

const (
	English    Language = "en"
	Spanish    Language = "es"
	French     Language = "fr"
	German     Language = "de"
	Chinese    Language = "zh"
	Japanese   Language = "ja"
	Russian    Language = "ru"
	Portuguese Language = "pt"
	Arabic     Language = "ar"
)

// Supported lists the interface languages; the first is the fallback.
var Supported = []Language{English, Spanish, French, German, Chinese, Japanese, Russian, Portuguese, Arabic}

var nativeNames = map[Language]string{
	English:    "English",
	Spanish:    "Español",
	French:     "Français",
	German:     "Deutsch",
	Chinese:    "中文",
	Japanese:   "日本語",
	Russian:    "Русский",
	Portuguese: "Português",
	Arabic:     "العربية",
}

const copyright = "© 2025 AksilFlow"

var translations = map[Language]map[string]string{
	English: {
		"dashboard": "Dashboard",
		"schedule":  "Schedule",
		"homework":  "Homework",
		"notes":     "Notes",
		"copyright": copyright,
	},
	Spanish: {
		"dashboard": "Panel",
		"schedule":  "Horario",
		"homework":  "Tareas",
		"notes":     "Notas",
		"copyright": copyright,
	},
	French: {
		"dashboard": "Tableau de bord",
		"schedule":  "Calendrier",
		"homework":  "Devoirs",
		"notes":     "Notes",
		"copyright": copyright,
	},
	German: {
		"dashboard": "Dashboard",
		"schedule":  "Zeitplan",
		"homework":  "Hausaufgaben",
		"notes":     "Notizen",
		"copyright": copyright,
	},
	Chinese: {
		"dashboard": "仪表板",
		"schedule":  "日程表",
		"homework":  "家庭作业",
		"notes":     "笔记",
		"copyright": copyright,
	},
	Japanese: {
		"dashboard": "ダッシュボード",
		"schedule":  "スケジュール",
		"homework":  "宿題",
		"notes":     "メモ",
		"copyright": copyright,
	},
	Russian: {
		"dashboard": "Панель",
		"schedule":  "Расписание",
		"homework":  "Домашняя работа",
		"notes":     "Заметки",
		"copyright": copyright,
	},
	Portuguese: {
		"dashboard": "Painel",
		"schedule":  "Agenda",
		"homework":  "Lição de casa",
		"notes":     "Notas",
		"copyright": copyright,
	},
	Arabic: {
		"dashboard": "لوحة القيادة",
		"schedule":  "جدول",
		"homework":  "واجب منزلي",
		"notes":     "ملاحظات",
		"copyright": copyright,
	},
}

// NativeName returns the language's name written in that language.
func (l Language) NativeName() string {
	if n, ok := nativeNames[l]; ok {
		return n
	}
	return string(l)
}

// Valid reports whether l has a translation table.
func (l Language) Valid() bool {
	_, ok := translations[l]
	return ok
}

// Parse accepts a supported code such as "fr" or "FR".
func Parse(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return l, nil
}

// Match maps a POSIX locale ("pt_BR.UTF-8") or BCP 47 tag ("zh-Hant") onto a
// supported language by its base. Unknown or unparseable values give false.
func Match(locale string) (Language, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "", false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	l := Language(base.String())
	if !l.Valid() {
		return "", false
	}
	return l, true
}

// Detect reads LC_ALL, LC_MESSAGES and LANG in that order and falls back to English.
func Detect(getenv func(string) string) Language {
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if l, ok := Match(getenv(key)); ok {
			return l
		}
	}
	return English
}

// Translator resolves interface strings for the current language and persists
// language changes under constants.KeyLanguage.
type Translator struct {
	mu     sync.RWMutex
	lang   Language
	store  storage.Provider
	getenv func(string) string
}

// Option configures a Translator.
type Option func(*Translator)

// WithGetenv replaces os.Getenv for locale detection.
func WithGetenv(fn func(string) string) Option {
	return func(t *Translator) { t.getenv = fn }
}

// New returns an English translator. Call Load to apply the saved preference.
func New(store storage.Provider, opts ...Option) *Translator {
	t := &Translator{lang: English, store: store, getenv: os.Getenv}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load applies the stored language, or the detected one when none is stored.
func (t *Translator) Load() error {
	lang := Detect(t.getenv)
	if t.store != nil {
		saved, ok, err := t.store.GetItem(constants.KeyLanguage)
		if err != nil {
			return fmt.Errorf("failed to read language preference: %w", err)
		}
		if ok {
			if l := Language(saved); l.Valid() {
				lang = l
			} else {
				logger.Warn("ignoring unsupported saved language", "language", saved)
			}
		}
	}

	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
	return nil
}

// Language returns the active language.
func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLanguage switches and persists the active language.
func (t *Translator) SetLanguage(l Language) error {
	if !l.Valid() {
		return fmt.Errorf("unsupported language %q", l)
	}
	if t.store != nil {
		if err := t.store.SetItem(constants.KeyLanguage, string(l)); err != nil {
			return fmt.Errorf("failed to save language preference: %w", err)
		}
	}

	t.mu.Lock()
	t.lang = l
	t.mu.Unlock()
	return nil
}

// T translates key, returning the key itself when no translation exists.
func (t *Translator) T(key string) string {
	t.mu.RLock()
	lang := t.lang
	t.mu.RUnlock()

	if s, ok := translations[lang][key]; ok && s != "" {
		return s
	}
	return key
}
