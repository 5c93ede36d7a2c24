package planner

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/logger"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/validation"
)

// AddClass validates in, assigns an id and appends the class.
func (p *Planner) AddClass(in models.ClassInput) (models.Class, error) {
	in = in.Trimmed()
	if err := validation.Struct(in); err != nil {
		return models.Class{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	c := models.NewClass(p.newID(), in)
	if err := p.commit(append(clone(p.classes), c), p.homework, p.notes); err != nil {
		return models.Class{}, err
	}
	logger.Debug("class added", "id", c.ID, "name", c.Name)
	return c, nil
}

// UpdateClass merges patch into the class with the given id.
func (p *Planner) UpdateClass(id string, patch models.ClassPatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexOf(p.classes, func(c models.Class) bool { return c.ID == id })
	if i < 0 {
		return fmt.Errorf("class %s: %w", id, ErrNotFound)
	}

	updated := patch.Apply(p.classes[i])
	if err := validation.Struct(updated.Input()); err != nil {
		return err
	}
	if err := p.commit(replaced(p.classes, i, updated), p.homework, p.notes); err != nil {
		return err
	}
	logger.Debug("class updated", "id", id)
	return nil
}

// DeleteClass removes the class and every homework item and note that belongs to it.
func (p *Planner) DeleteClass(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if indexOf(p.classes, func(c models.Class) bool { return c.ID == id }) < 0 {
		return fmt.Errorf("class %s: %w", id, ErrNotFound)
	}

	classes := without(p.classes, func(c models.Class) bool { return c.ID == id })
	homework := without(p.homework, func(h models.Homework) bool { return h.ClassID == id })
	notes := without(p.notes, func(n models.Note) bool { return n.ClassID == id })

	removedHomework, removedNotes := len(p.homework)-len(homework), len(p.notes)-len(notes)
	if err := p.commit(classes, homework, notes); err != nil {
		return err
	}
	logger.Debug("class deleted", "id", id, "homework_removed", removedHomework, "notes_removed", removedNotes)
	return nil
}

// requireClass fails unless classID names a stored class. Callers hold p.mu.
func (p *Planner) requireClass(classID string) error {
	if indexOf(p.classes, func(c models.Class) bool { return c.ID == classID }) < 0 {
		return fmt.Errorf("class %s: %w", classID, ErrNotFound)
	}
	return nil
}

// AddHomework validates in, assigns an id and creation time and appends the item.
func (p *Planner) AddHomework(in models.HomeworkInput) (models.Homework, error) {
	in = in.Trimmed()
	if err := validation.Struct(in); err != nil {
		return models.Homework{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.requireClass(in.ClassID); err != nil {
		return models.Homework{}, err
	}

	h := models.NewHomework(p.newID(), in, p.stamp())
	if err := p.commit(p.classes, append(clone(p.homework), h), p.notes); err != nil {
		return models.Homework{}, err
	}
	logger.Debug("homework added", "id", h.ID, "class", h.ClassID)
	return h, nil
}

// UpdateHomework merges patch into the homework item with the given id.
func (p *Planner) UpdateHomework(id string, patch models.HomeworkPatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexOf(p.homework, func(h models.Homework) bool { return h.ID == id })
	if i < 0 {
		return fmt.Errorf("homework %s: %w", id, ErrNotFound)
	}

	updated := patch.Apply(p.homework[i])
	if err := validation.Struct(updated.Input()); err != nil {
		return err
	}
	if patch.ClassID != nil {
		if err := p.requireClass(updated.ClassID); err != nil {
			return err
		}
	}
	if err := p.commit(p.classes, replaced(p.homework, i, updated), p.notes); err != nil {
		return err
	}
	logger.Debug("homework updated", "id", id)
	return nil
}

// DeleteHomework removes the homework item with the given id.
func (p *Planner) DeleteHomework(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if indexOf(p.homework, func(h models.Homework) bool { return h.ID == id }) < 0 {
		return fmt.Errorf("homework %s: %w", id, ErrNotFound)
	}
	homework := without(p.homework, func(h models.Homework) bool { return h.ID == id })
	if err := p.commit(p.classes, homework, p.notes); err != nil {
		return err
	}
	logger.Debug("homework deleted", "id", id)
	return nil
}

// ToggleHomeworkStatus flips the completed flag and returns the new value.
func (p *Planner) ToggleHomeworkStatus(id string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexOf(p.homework, func(h models.Homework) bool { return h.ID == id })
	if i < 0 {
		return false, fmt.Errorf("homework %s: %w", id, ErrNotFound)
	}

	h := p.homework[i]
	h.Completed = !h.Completed
	if err := p.commit(p.classes, replaced(p.homework, i, h), p.notes); err != nil {
		return !h.Completed, err
	}
	logger.Debug("homework toggled", "id", id, "completed", h.Completed)
	return h.Completed, nil
}

// AddNote validates in and appends a note whose createdAt equals updatedAt.
func (p *Planner) AddNote(in models.NoteInput) (models.Note, error) {
	in = in.Trimmed()
	if err := validation.Struct(in); err != nil {
		return models.Note{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.requireClass(in.ClassID); err != nil {
		return models.Note{}, err
	}

	n := models.NewNote(p.newID(), in, p.stamp())
	if err := p.commit(p.classes, p.homework, append(clone(p.notes), n)); err != nil {
		return models.Note{}, err
	}
	logger.Debug("note added", "id", n.ID, "class", n.ClassID)
	return n, nil
}

// UpdateNote merges patch into the note and refreshes its updatedAt.
func (p *Planner) UpdateNote(id string, patch models.NotePatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexOf(p.notes, func(n models.Note) bool { return n.ID == id })
	if i < 0 {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}

	updated := patch.Apply(p.notes[i], p.stamp())
	if err := validation.Struct(updated.Input()); err != nil {
		return err
	}
	if patch.ClassID != nil {
		if err := p.requireClass(updated.ClassID); err != nil {
			return err
		}
	}
	if err := p.commit(p.classes, p.homework, replaced(p.notes, i, updated)); err != nil {
		return err
	}
	logger.Debug("note updated", "id", id)
	return nil
}

// DeleteNote removes the note with the given id.
func (p *Planner) DeleteNote(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if indexOf(p.notes, func(n models.Note) bool { return n.ID == id }) < 0 {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	notes := without(p.notes, func(n models.Note) bool { return n.ID == id })
	if err := p.commit(p.classes, p.homework, notes); err != nil {
		return err
	}
	logger.Debug("note deleted", "id", id)
	return nil
}
