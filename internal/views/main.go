package views

import (
	"fmt"

	"mymdb/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// FormView is the single-record form: Name and Score entries between the
// navigation and action bars, with a status line at the bottom.
type FormView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	nameEntry     *widget.Entry
	scoreEntry    *widget.Entry
	navBar        *components.NavBar
	actionBar     *components.ActionBar
	statusBar     *components.StatusBar
}

// NewFormView builds the form and sets it as the window content.
func NewFormView(window fyne.Window) *FormView {
	view := &FormView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (fv *FormView) initializeComponents() {
	fv.nameEntry = widget.NewEntry()
	fv.nameEntry.SetPlaceHolder("Title")

	fv.scoreEntry = widget.NewEntry()
	fv.scoreEntry.SetPlaceHolder("0")

	fv.navBar = components.NewNavBar()
	fv.actionBar = components.NewActionBar()
	fv.statusBar = components.NewStatusBar()
}

func (fv *FormView) buildLayout() {
	fields := container.NewVBox(
		widget.NewLabel("Name:"),
		fv.nameEntry,
		widget.NewLabel("Score:"),
		fv.scoreEntry,
	)

	fv.mainContainer = container.NewBorder(
		fv.navBar.GetContainer(),
		container.NewVBox(fv.actionBar.GetContainer(), fv.statusBar.GetContainer()),
		nil,
		nil,
		fields,
	)

	fv.window.SetContent(fv.mainContainer)
}

// Event handler setters - called by controller

func (fv *FormView) SetPreviousHandler(handler func()) {
	fv.navBar.SetPreviousHandler(handler)
}

func (fv *FormView) SetNextHandler(handler func()) {
	fv.navBar.SetNextHandler(handler)
}

func (fv *FormView) SetNewHandler(handler func()) {
	fv.actionBar.SetNewHandler(handler)
}

func (fv *FormView) SetSaveHandler(handler func()) {
	fv.actionBar.SetSaveHandler(handler)
}

func (fv *FormView) SetDeleteHandler(handler func()) {
	fv.actionBar.SetDeleteHandler(handler)
}

// UI update methods - called by controller on the UI goroutine

// Fields returns the raw text of the Name and Score entries.
func (fv *FormView) Fields() (name, score string) {
	return fv.nameEntry.Text, fv.scoreEntry.Text
}

func (fv *FormView) SetFields(name, score string) {
	fv.nameEntry.SetText(name)
	fv.scoreEntry.SetText(score)
}

func (fv *FormView) ClearFields() {
	fv.SetFields("", "")
}

func (fv *FormView) SetStatus(status string) {
	fv.statusBar.SetStatus(status)
}

func (fv *FormView) SetDeleteEnabled(enabled bool) {
	fv.actionBar.EnableDelete(enabled)
}

// ShowError displays an error dialog
func (fv *FormView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), fv.window)
}

// Show displays the window
func (fv *FormView) Show() {
	fv.window.Show()
}
