package constants

import "time"

// Page identifies one of the routed pages of the TUI.
type Page int

const (
	AppName           = "studydash"
	DefaultConfigPath = "~/.config/studydash/studydash.db"
	ConfigEnvVar      = "STUDYDASH_CONFIG"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys. Each holds one JSON-encoded collection, except KeyLanguage.
	KeyClasses  = "studentClasses"
	KeyHomework = "studentHomework"
	KeyNotes    = "studentNotes"
	KeyLanguage = "appLanguage"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "studydash-"

	// Form defaults
	DefaultClassStart    = "09:00"
	DefaultClassEnd      = "10:30"
	DefaultDueInDays     = 7
	DashboardHomeworkMax = 3
	NotePreviewLength    = 120

	// ToastDuration is how long a transient notification stays on screen.
	ToastDuration = 3 * time.Second

	// Messages shown as transient notifications
	MsgRequiredFields = "Please fill in all required fields"
	MsgUnknownClass   = "Unknown Class"
)

const (
	PageDashboard Page = iota
	PageSchedule
	PageHomework
	PageNotes
)

// Pages lists the routed pages in tab order.
var Pages = []Page{PageDashboard, PageSchedule, PageHomework, PageNotes}

// TranslationKey returns the i18n key for the page's tab label.
func (p Page) TranslationKey() string {
	switch p {
	case PageDashboard:
		return "dashboard"
	case PageSchedule:
		return "schedule"
	case PageHomework:
		return "homework"
	case PageNotes:
		return "notes"
	default:
		return ""
	}
}
