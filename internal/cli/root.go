package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/studydash/internal/backup"
	"github.com/julianstephens/studydash/internal/i18n"
	"github.com/julianstephens/studydash/internal/logger"
	"github.com/julianstephens/studydash/internal/planner"
	"github.com/julianstephens/studydash/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Planner *planner.Planner
	I18n    *i18n.Translator

	// Out and In default to the process's stdout and stdin.
	Out io.Writer
	In  io.Reader
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes formatted output for the user.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

// Println writes a line of output for the user.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Confirm asks a yes/no question and reports whether the answer was yes.
// Anything other than "y" or "yes" counts as no.
func (c *Context) Confirm(prompt string) (bool, error) {
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	c.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// Load opens the store, creating it on first use, then loads the planner
// and the language preference. A store created here starts out with the
// sample planner.
func (c *Context) Load() error {
	err := c.Store.Load()
	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("creating storage on first run", "path", c.Store.GetConfigPath())
		err = c.Store.Init()
	}
	if err != nil {
		return err
	}
	if err := c.Planner.Load(); err != nil {
		return err
	}
	if c.I18n != nil {
		return c.I18n.Load()
	}
	return nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

var dayMap = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts a day name, its three letter abbreviation, or 0-6 (0=Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	part := strings.TrimSpace(strings.ToLower(s))
	if wd, ok := dayMap[part]; ok {
		return wd, nil
	}
	num, err := strconv.Atoi(part)
	if err == nil && num >= 0 && num <= 6 {
		return time.Weekday(num), nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

// ResolveClassID accepts a class ID or an exact (case-insensitive) class name.
func (c *Context) ResolveClassID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if _, ok := c.Planner.GetClassByID(ref); ok {
		return ref, nil
	}

	var matches []string
	for _, cl := range c.Planner.Classes() {
		if strings.EqualFold(cl.Name, ref) {
			matches = append(matches, cl.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("class %q: %w", ref, planner.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("class name %q is ambiguous, use the ID (%s)", ref, strings.Join(matches, ", "))
	}
}
