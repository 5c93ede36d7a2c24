package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/utils"
	"github.com/julianstephens/studydash/internal/validation"
)

func validateTime(s string) error {
	if !validation.ValidTime(strings.TrimSpace(s)) {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return nil
}

// NewClassForm creates the form for adding or editing a class
func NewClassForm(fm *ClassFormModel, title string) *huh.Form {
	subjects := make([]huh.Option[models.Subject], len(models.Subjects))
	for i, s := range models.Subjects {
		subjects[i] = huh.NewOption(s.Label(), s)
	}
	days := make([]huh.Option[time.Weekday], 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = huh.NewOption(utils.DayName(d), d)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Class Name").
				Value(&fm.Name),
			huh.NewSelect[models.Subject]().
				Title("Subject").
				Options(subjects...).
				Value(&fm.Subject),
			huh.NewInput().
				Title("Instructor").
				Value(&fm.Instructor),
			huh.NewInput().
				Title("Room").
				Value(&fm.Room),
			huh.NewSelect[time.Weekday]().
				Title("Day").
				Options(days...).
				Value(&fm.Day),
			huh.NewInput().
				Title("Start Time (HH:MM)").
				Value(&fm.StartTime).
				Validate(validateTime),
			huh.NewInput().
				Title("End Time (HH:MM)").
				Value(&fm.EndTime).
				Validate(validateTime),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewHomeworkForm creates the form for adding or editing homework
func NewHomeworkForm(fm *HomeworkFormModel, classes []models.Class, title string) *huh.Form {
	options := make([]huh.Option[string], len(classes))
	for i, c := range classes {
		options[i] = huh.NewOption(c.Name, c.ID)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewSelect[string]().
				Title("Class").
				Options(options...).
				Value(&fm.ClassID),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD)").
				Value(&fm.DueDate).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := validation.ParseDueDate(s, time.Local); err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(&fm.Description),
			huh.NewConfirm().
				Title("Completed").
				Value(&fm.Completed),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewNoteForm creates the form for adding or editing a note
func NewNoteForm(fm *NoteFormModel, classes []models.Class, title string) *huh.Form {
	options := make([]huh.Option[string], len(classes))
	for i, c := range classes {
		options[i] = huh.NewOption(c.Name, c.ID)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewSelect[string]().
				Title("Class").
				Options(options...).
				Value(&fm.ClassID),
			huh.NewText().
				Title("Content").
				Value(&fm.Content),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmForm creates a yes/no confirmation form
func NewConfirmForm(fm *ConfirmFormModel, title, description string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) openForm(kind formKind, editingID string) tea.Cmd {
	m.formKind = kind
	m.editingID = editingID
	m.form = m.buildForm()
	m.dialog = dialogForm
	return m.form.Init()
}

// buildForm creates a fresh form for the current form model.
func (m *Model) buildForm() *huh.Form {
	verb := "Add"
	if m.editingID != "" {
		verb = "Edit"
	}
	switch m.formKind {
	case formHomework:
		return NewHomeworkForm(m.homeworkForm, m.planner.Classes(), verb+" Homework")
	case formNote:
		return NewNoteForm(m.noteForm, m.planner.Classes(), verb+" Note")
	default:
		return NewClassForm(m.classForm, verb+" Class")
	}
}

func (m *Model) openClassForm(day time.Weekday) tea.Cmd {
	m.classForm = &ClassFormModel{
		Subject:   models.SubjectDefault,
		Day:       day,
		StartTime: constants.DefaultClassStart,
		EndTime:   constants.DefaultClassEnd,
	}
	return m.openForm(formClass, "")
}

func (m *Model) openEditClassForm(c models.Class) tea.Cmd {
	m.classForm = &ClassFormModel{
		Name:       c.Name,
		Subject:    c.Subject,
		Instructor: c.Instructor,
		Room:       c.Room,
		Day:        c.DayOfWeek,
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
	}
	return m.openForm(formClass, c.ID)
}

// firstClassID returns preferred when it names a class, else the first class.
// ok is false when there are no classes at all.
func (m *Model) firstClassID(preferred string) (string, bool) {
	if _, found := m.planner.GetClassByID(preferred); found {
		return preferred, true
	}
	classes := m.planner.Classes()
	if len(classes) == 0 {
		return "", false
	}
	return classes[0].ID, true
}

func (m *Model) openHomeworkForm() tea.Cmd {
	classID, ok := m.firstClassID("")
	if !ok {
		return m.showToast("Add a class first")
	}
	due := m.planner.Now().Local().AddDate(0, 0, constants.DefaultDueInDays)
	m.homeworkForm = &HomeworkFormModel{
		ClassID: classID,
		DueDate: due.Format(constants.DateFormat),
	}
	return m.openForm(formHomework, "")
}

func (m *Model) openEditHomeworkForm(h models.Homework) tea.Cmd {
	m.homeworkForm = &HomeworkFormModel{
		Title:       h.Title,
		ClassID:     h.ClassID,
		DueDate:     h.DueDate.Local().Format(constants.DateFormat),
		Description: h.Description,
		Completed:   h.Completed,
	}
	return m.openForm(formHomework, h.ID)
}

func (m *Model) openNoteForm(classID string) tea.Cmd {
	classID, ok := m.firstClassID(classID)
	if !ok {
		return m.showToast("Add a class first")
	}
	m.noteForm = &NoteFormModel{ClassID: classID}
	return m.openForm(formNote, "")
}

func (m *Model) openEditNoteForm(n models.Note) tea.Cmd {
	m.noteForm = &NoteFormModel{
		Title:   n.Title,
		ClassID: n.ClassID,
		Content: n.Content,
	}
	return m.openForm(formNote, n.ID)
}

// submitForm saves the open form and returns the success toast.
func (m *Model) submitForm() (string, error) {
	switch m.formKind {
	case formHomework:
		return m.submitHomework()
	case formNote:
		return m.submitNote()
	default:
		return m.submitClass()
	}
}

func (m *Model) submitClass() (string, error) {
	fm := m.classForm
	in := models.ClassInput{
		Name:       fm.Name,
		Subject:    fm.Subject,
		Instructor: fm.Instructor,
		Room:       fm.Room,
		DayOfWeek:  fm.Day,
		StartTime:  fm.StartTime,
		EndTime:    fm.EndTime,
	}
	if m.editingID == "" {
		if _, err := m.planner.AddClass(in); err != nil {
			return "", err
		}
		return "Class added successfully", nil
	}
	patch := models.ClassPatch{
		Name:       &in.Name,
		Subject:    &in.Subject,
		Instructor: &in.Instructor,
		Room:       &in.Room,
		DayOfWeek:  &in.DayOfWeek,
		StartTime:  &in.StartTime,
		EndTime:    &in.EndTime,
	}
	if err := m.planner.UpdateClass(m.editingID, patch); err != nil {
		return "", err
	}
	return "Class updated successfully", nil
}

func (m *Model) submitHomework() (string, error) {
	fm := m.homeworkForm
	var due time.Time
	if s := strings.TrimSpace(fm.DueDate); s != "" {
		d, err := validation.ParseDueDate(s, time.Local)
		if err != nil {
			return "", err
		}
		due = d
	}
	in := models.HomeworkInput{
		ClassID:     fm.ClassID,
		Title:       fm.Title,
		Description: fm.Description,
		DueDate:     due,
		Completed:   fm.Completed,
	}
	if m.editingID == "" {
		if _, err := m.planner.AddHomework(in); err != nil {
			return "", err
		}
		return "Homework added successfully", nil
	}
	patch := models.HomeworkPatch{
		ClassID:     &in.ClassID,
		Title:       &in.Title,
		Description: &in.Description,
		DueDate:     &in.DueDate,
		Completed:   &in.Completed,
	}
	if err := m.planner.UpdateHomework(m.editingID, patch); err != nil {
		return "", err
	}
	return "Homework updated successfully", nil
}

func (m *Model) submitNote() (string, error) {
	fm := m.noteForm
	in := models.NoteInput{
		ClassID: fm.ClassID,
		Title:   fm.Title,
		Content: fm.Content,
	}
	if m.editingID == "" {
		if _, err := m.planner.AddNote(in); err != nil {
			return "", err
		}
		return "Note added successfully", nil
	}
	patch := models.NotePatch{
		ClassID: &in.ClassID,
		Title:   &in.Title,
		Content: &in.Content,
	}
	if err := m.planner.UpdateNote(m.editingID, patch); err != nil {
		return "", err
	}
	return "Note updated successfully", nil
}

// completeForm submits the finished form. On failure the form is rebuilt
// with the entered values so the user can correct them.
func (m *Model) completeForm() tea.Cmd {
	text, err := m.submitForm()
	if err != nil {
		msg := err.Error()
		if errors.Is(err, validation.ErrRequiredFields) {
			msg = constants.MsgRequiredFields
		}
		m.form = m.buildForm()
		return tea.Batch(m.form.Init(), m.showToast(msg))
	}
	m.closeDialog()
	m.refresh()
	return m.showToast(text)
}

// confirm opens a confirmation dialog that runs action when accepted.
func (m *Model) confirm(title, description string, action func() (string, error)) tea.Cmd {
	m.confirmForm = &ConfirmFormModel{}
	m.form = NewConfirmForm(m.confirmForm, title, description)
	m.pendingAction = action
	m.dialog = dialogConfirm
	return m.form.Init()
}

func (m *Model) closeDialog() {
	m.dialog = dialogNone
	m.form = nil
	m.editingID = ""
	m.pendingAction = nil
	m.viewingNote = nil
}
