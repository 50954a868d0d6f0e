package views

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mymdb/internal/controllers"
	"mymdb/internal/logger"
	"mymdb/internal/models"
	"mymdb/internal/store"
)

func newTestView(t *testing.T) *FormView {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	return NewFormView(w)
}

func TestFormView_FieldsRoundTrip(t *testing.T) {
	fv := newTestView(t)

	fv.SetFields("Stalker", "9")
	name, score := fv.Fields()
	assert.Equal(t, "Stalker", name)
	assert.Equal(t, "9", score)

	fv.ClearFields()
	name, score = fv.Fields()
	assert.Empty(t, name)
	assert.Empty(t, score)
}

func TestFormView_TypedInputIsReadBack(t *testing.T) {
	fv := newTestView(t)

	test.Type(fv.nameEntry, "Arrival")
	test.Type(fv.scoreEntry, "8")

	name, score := fv.Fields()
	assert.Equal(t, "Arrival", name)
	assert.Equal(t, "8", score)
}

func TestFormView_ButtonsCallHandlers(t *testing.T) {
	fv := newTestView(t)

	var calls []string
	fv.SetPreviousHandler(func() { calls = append(calls, "previous") })
	fv.SetNextHandler(func() { calls = append(calls, "next") })
	fv.SetNewHandler(func() { calls = append(calls, "new") })
	fv.SetSaveHandler(func() { calls = append(calls, "save") })
	fv.SetDeleteHandler(func() { calls = append(calls, "delete") })

	for _, b := range fv.navBar.Buttons() {
		test.Tap(b)
	}
	for _, b := range fv.actionBar.Buttons() {
		test.Tap(b)
	}

	assert.Equal(t, []string{"previous", "next", "new", "save", "delete"}, calls)
}

func TestFormView_ButtonLabels(t *testing.T) {
	fv := newTestView(t)

	var labels []string
	for _, b := range append(fv.navBar.Buttons(), fv.actionBar.Buttons()...) {
		labels = append(labels, b.Text)
	}
	assert.Equal(t, []string{"Previous", "Next", "New", "Save", "Delete"}, labels)
}

func TestFormView_StatusAndError(t *testing.T) {
	fv := newTestView(t)

	fv.SetStatus("Record 1 of 3")
	assert.Equal(t, "Record 1 of 3", fv.statusBar.GetStatus())

	assert.NotPanics(t, func() {
		fv.ShowError("Invalid score", errors.New("must be a whole number"))
	})
}

func TestFormView_DeleteEnabled(t *testing.T) {
	fv := newTestView(t)

	var deleted int
	fv.SetDeleteHandler(func() { deleted++ })
	deleteBtn := fv.actionBar.Buttons()[2]

	fv.SetDeleteEnabled(false)
	assert.True(t, deleteBtn.Disabled())
	test.Tap(deleteBtn)
	assert.Zero(t, deleted)

	fv.SetDeleteEnabled(true)
	assert.False(t, deleteBtn.Disabled())
	test.Tap(deleteBtn)
	assert.Equal(t, 1, deleted)
}

// The whole form against a real database, driven through the buttons.
func TestFormView_WithController(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "movies.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	_, err = s.Seed(ctx, store.DefaultSeed)
	require.NoError(t, err)

	fv := newTestView(t)
	fc := controllers.NewFormController(s, models.NewCursor(), logger.NewNop())
	fc.SetView(fv)
	require.NoError(t, fc.Start(ctx))

	prev, next := fv.navBar.Buttons()[0], fv.navBar.Buttons()[1]
	buttons := fv.actionBar.Buttons()
	newBtn, saveBtn, deleteBtn := buttons[0], buttons[1], buttons[2]

	name, score := fv.Fields()
	assert.Equal(t, "Stalker", name)
	assert.Equal(t, "9", score)

	test.Tap(next)
	name, _ = fv.Fields()
	assert.Equal(t, "Gattaca", name)

	test.Tap(prev)
	name, _ = fv.Fields()
	assert.Equal(t, "Stalker", name)

	test.Tap(newBtn)
	assert.True(t, deleteBtn.Disabled())
	test.Type(fv.nameEntry, "Arrival")
	test.Type(fv.scoreEntry, "8")
	test.Tap(saveBtn)
	assert.Equal(t, "Record 4 of 4", fv.statusBar.GetStatus())
	assert.False(t, deleteBtn.Disabled())

	test.Tap(deleteBtn)
	name, _ = fv.Fields()
	assert.Equal(t, "Starship Troopers", name)
	assert.Equal(t, "Record 3 of 3", fv.statusBar.GetStatus())

	movies, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 3)
}
