package i18n

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/storage"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func newStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "studydash.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   Language
		ok     bool
	}{
		{"fr_FR.UTF-8", French, true},
		{"pt_BR", Portuguese, true},
		{"de-AT", German, true},
		{"ja_JP.eucJP", Japanese, true},
		{"zh_CN.UTF-8", Chinese, true},
		{"en_US.UTF-8@euro", English, true},
		{"sv_SE.UTF-8", "", false},
		{"C", "", false},
		{"POSIX", "", false},
		{"", "", false},
		{"!!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, ok := Match(tt.locale)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.locale, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDetectPrecedence(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Language
	}{
		{"LC_ALL wins", map[string]string{"LC_ALL": "es_ES.UTF-8", "LANG": "de_DE.UTF-8"}, Spanish},
		{"LC_MESSAGES before LANG", map[string]string{"LC_MESSAGES": "ru_RU", "LANG": "de_DE"}, Russian},
		{"unsupported falls through", map[string]string{"LC_ALL": "sv_SE", "LANG": "ar_EG.UTF-8"}, Arabic},
		{"nothing set", map[string]string{}, English},
		{"C locale", map[string]string{"LANG": "C.UTF-8"}, English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(env(tt.vars)); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if l, err := Parse(" FR "); err != nil || l != French {
		t.Errorf("Parse(FR) = %q, %v", l, err)
	}
	if _, err := Parse("xx"); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestTranslate(t *testing.T) {
	tr := New(nil)
	if got := tr.T("homework"); got != "Homework" {
		t.Errorf("T(homework) = %q", got)
	}
	if got := tr.T("missing.key"); got != "missing.key" {
		t.Errorf("T(missing.key) = %q, want key fallback", got)
	}

	if err := tr.SetLanguage(German); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}
	if got := tr.T("notes"); got != "Notizen" {
		t.Errorf("T(notes) in German = %q", got)
	}
	if got := tr.T("copyright"); got != "© 2025 AksilFlow" {
		t.Errorf("T(copyright) = %q", got)
	}
}

func TestEveryLanguageHasEveryKey(t *testing.T) {
	for _, l := range Supported {
		for _, p := range constants.Pages {
			key := p.TranslationKey()
			if translations[l][key] == "" {
				t.Errorf("%s is missing %q", l, key)
			}
		}
		if l.NativeName() == string(l) {
			t.Errorf("%s has no native name", l)
		}
	}
}

func TestLoadPrefersSavedLanguage(t *testing.T) {
	store := newStore(t)
	if err := store.SetItem(constants.KeyLanguage, "ja"); err != nil {
		t.Fatal(err)
	}

	tr := New(store, WithGetenv(env(map[string]string{"LANG": "fr_FR.UTF-8"})))
	if err := tr.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tr.Language() != Japanese {
		t.Errorf("Language() = %q, want ja", tr.Language())
	}
}

func TestLoadDetectsWhenSavedLanguageInvalid(t *testing.T) {
	store := newStore(t)
	if err := store.SetItem(constants.KeyLanguage, "klingon"); err != nil {
		t.Fatal(err)
	}

	tr := New(store, WithGetenv(env(map[string]string{"LANG": "fr_FR.UTF-8"})))
	if err := tr.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tr.Language() != French {
		t.Errorf("Language() = %q, want fr", tr.Language())
	}
}

func TestSetLanguagePersists(t *testing.T) {
	store := newStore(t)
	tr := New(store)
	if err := tr.SetLanguage(Portuguese); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}
	if v, ok, _ := store.GetItem(constants.KeyLanguage); !ok || v != "pt" {
		t.Errorf("stored language = %q, %v", v, ok)
	}

	if err := tr.SetLanguage("xx"); err == nil {
		t.Error("expected error for unsupported language")
	}
	if tr.Language() != Portuguese {
		t.Errorf("failed SetLanguage changed language to %q", tr.Language())
	}
}
