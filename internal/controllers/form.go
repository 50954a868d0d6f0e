package controllers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"mymdb/internal/logger"
	"mymdb/internal/models"
	"mymdb/internal/store"
)

const component = "FormController"

// MovieStore is the persistence the form needs.
type MovieStore interface {
	Insert(ctx context.Context, name string, score int) (int64, error)
	Update(ctx context.Context, id int64, name string, score int) error
	Delete(ctx context.Context, id int64) error
	FetchAll(ctx context.Context) ([]models.Movie, error)
}

// FormView is the window content the controller renders into.
type FormView interface {
	Fields() (name, score string)
	SetFields(name, score string)
	ClearFields()
	SetStatus(status string)
	ShowError(title string, err error)
	SetDeleteEnabled(enabled bool)

	SetPreviousHandler(handler func())
	SetNextHandler(handler func())
	SetNewHandler(handler func())
	SetSaveHandler(handler func())
	SetDeleteHandler(handler func())
}

// Mode is the form's editing state.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeNew
)

func (m Mode) String() string {
	if m == ModeNew {
		return "new"
	}
	return "browse"
}

// FormController handles one user action per method. Every action runs to
// completion on the caller's goroutine.
type FormController struct {
	store  MovieStore
	cursor *models.Cursor
	view   FormView
	logger logger.Logger
}

func NewFormController(store MovieStore, cursor *models.Cursor, log logger.Logger) *FormController {
	return &FormController{
		store:  store,
		cursor: cursor,
		logger: log,
	}
}

// SetView associates the view with this controller and wires its buttons.
func (fc *FormController) SetView(view FormView) {
	fc.view = view

	view.SetPreviousHandler(fc.Previous)
	view.SetNextHandler(fc.Next)
	view.SetNewHandler(fc.New)
	view.SetSaveHandler(fc.Save)
	view.SetDeleteHandler(fc.Delete)
}

// Start loads the first snapshot and shows the first record.
func (fc *FormController) Start(ctx context.Context) error {
	records, err := fc.store.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("initial fetch: %w", err)
	}

	fc.cursor.Reset(records)
	fc.cursor.JumpTo(0)
	fc.render()

	fc.logger.Info(component, "form ready", map[string]interface{}{
		"records": fc.cursor.Len(),
	})
	return nil
}

func (fc *FormController) Mode() Mode {
	if fc.cursor.IsNewMode() {
		return ModeNew
	}
	return ModeBrowse
}

func (fc *FormController) Previous() {
	fc.cursor.Prev()
	fc.render()
}

func (fc *FormController) Next() {
	fc.cursor.Next()
	fc.render()
}

// New clears the fields and puts the cursor past the last record. Nothing is
// written until Save.
func (fc *FormController) New() {
	fc.view.ClearFields()
	fc.cursor.EnterNewMode()
	fc.updateStatus()
}

// Save inserts in New mode and updates the current record otherwise.
func (fc *FormController) Save() {
	ctx := context.Background()

	name, scoreText := fc.view.Fields()
	score, err := models.ParseScore(scoreText)
	if err != nil {
		fc.logger.Warning(component, "save rejected", map[string]interface{}{
			"error": err.Error(),
		})
		fc.view.ShowError("Invalid score", err)
		return
	}

	if fc.cursor.IsNewMode() {
		id, err := fc.store.Insert(ctx, name, score)
		if err != nil {
			fc.handleError("Save failed", err)
			return
		}
		fc.logger.Debug(component, "movie inserted", map[string]interface{}{
			"id":    id,
			"score": score,
		})

		inserted := models.Movie{ID: id, Name: name, Score: score}
		fc.refresh(ctx, func(records []models.Movie) []models.Movie {
			return append(records, inserted)
		})
		return
	}

	current, ok := fc.cursor.Current()
	if !ok {
		return
	}
	if err := fc.store.Update(ctx, current.ID, name, score); err != nil {
		fc.handleError("Save failed", err)
		return
	}
	fc.logger.Debug(component, "movie updated", map[string]interface{}{
		"id":    current.ID,
		"score": score,
	})

	fc.refresh(ctx, func(records []models.Movie) []models.Movie {
		for i := range records {
			if records[i].ID == current.ID {
				records[i].Name, records[i].Score = name, score
			}
		}
		return records
	})
}

// Delete removes the current record. No-op in New mode or on an empty list.
func (fc *FormController) Delete() {
	current, ok := fc.cursor.Current()
	if !ok {
		return
	}

	ctx := context.Background()
	if err := fc.store.Delete(ctx, current.ID); err != nil {
		fc.handleError("Delete failed", err)
		return
	}
	fc.logger.Debug(component, "movie deleted", map[string]interface{}{
		"id": current.ID,
	})

	fc.refresh(ctx, func(records []models.Movie) []models.Movie {
		kept := records[:0]
		for _, m := range records {
			if m.ID != current.ID {
				kept = append(kept, m)
			}
		}
		return kept
	})
}

// refresh re-fetches the snapshot after a committed write, re-clamps the
// position and renders. If the fetch fails, applied rebuilds the snapshot
// from the old one so the form still reflects the committed write and a
// second Save cannot insert the same row again.
func (fc *FormController) refresh(ctx context.Context, applied func([]models.Movie) []models.Movie) {
	records, err := fc.store.FetchAll(ctx)
	if err != nil {
		fc.handleError("Refresh failed", err)
		records = applied(fc.cursor.Records())
	}

	fc.cursor.Reset(records)
	fc.render()
}

func (fc *FormController) render() {
	if current, ok := fc.cursor.Current(); ok {
		fc.view.SetFields(current.Name, strconv.Itoa(current.Score))
	} else {
		fc.view.ClearFields()
	}
	fc.updateStatus()
}

func (fc *FormController) updateStatus() {
	fc.view.SetStatus(StatusText(fc.cursor))
	fc.view.SetDeleteEnabled(fc.Mode() == ModeBrowse)
}

// StatusText describes the cursor position for the status line.
func StatusText(c *models.Cursor) string {
	switch {
	case c.IsNewMode() && c.Len() == 0:
		return "No records"
	case c.IsNewMode():
		return "New record"
	default:
		return fmt.Sprintf("Record %d of %d", c.Position()+1, c.Len())
	}
}

// handleError logs the failure and reports it through the view. Cursor and
// fields are left as they were.
func (fc *FormController) handleError(title string, err error) {
	fields := map[string]interface{}{"action": title}

	var serr *store.StorageError
	if errors.As(err, &serr) {
		fields["op"] = serr.Op
	}
	fc.logger.Error(component, err, fields)

	if fc.view != nil {
		fc.view.ShowError(title, err)
	}
}
