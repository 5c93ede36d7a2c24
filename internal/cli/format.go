package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/utils"
)

// FormatClassTime renders a class's meeting time as "9:00 AM - 10:30 AM".
func FormatClassTime(c models.Class) string {
	return utils.FormatTimeRange(c.StartTime, c.EndTime)
}

// FormatClassLine renders one class for list output.
func FormatClassLine(c models.Class) string {
	return fmt.Sprintf("%-19s  %s [%s]  %s, %s  (ID: %s)",
		FormatClassTime(c), c.Name, c.Subject.Label(), c.Instructor, c.Room, c.ID)
}

// FormatHomeworkLine renders one homework item for list output.
func FormatHomeworkLine(h models.Homework, className string, now time.Time) string {
	mark := "[ ]"
	if h.Completed {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s  (%s, due %s: %s)  (ID: %s)",
		mark, h.Title, className, utils.FormatShortDate(h.DueDate), utils.RelativeTimeString(h.DueDate, now), h.ID)
}
