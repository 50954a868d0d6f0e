package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NavBar holds the Previous and Next buttons.
type NavBar struct {
	container      *fyne.Container
	previousButton *widget.Button
	nextButton     *widget.Button

	previousHandler func()
	nextHandler     func()
}

// NewNavBar creates a new navigation bar component
func NewNavBar() *NavBar {
	nb := &NavBar{}
	nb.createComponents()
	nb.buildLayout()
	nb.setupEventHandlers()
	return nb
}

func (nb *NavBar) createComponents() {
	nb.previousButton = widget.NewButton("Previous", nil)
	nb.nextButton = widget.NewButton("Next", nil)
}

func (nb *NavBar) buildLayout() {
	nb.container = container.NewCenter(
		container.NewHBox(nb.previousButton, nb.nextButton),
	)
}

func (nb *NavBar) setupEventHandlers() {
	nb.previousButton.OnTapped = func() {
		if nb.previousHandler != nil {
			nb.previousHandler()
		}
	}

	nb.nextButton.OnTapped = func() {
		if nb.nextHandler != nil {
			nb.nextHandler()
		}
	}
}

func (nb *NavBar) SetPreviousHandler(handler func()) {
	nb.previousHandler = handler
}

func (nb *NavBar) SetNextHandler(handler func()) {
	nb.nextHandler = handler
}

// GetContainer returns the navigation bar container
func (nb *NavBar) GetContainer() *fyne.Container {
	return nb.container
}

// Buttons returns Previous and Next.
func (nb *NavBar) Buttons() []*widget.Button {
	return []*widget.Button{nb.previousButton, nb.nextButton}
}

// ActionBar holds the New, Save and Delete buttons.
type ActionBar struct {
	container    *fyne.Container
	newButton    *widget.Button
	saveButton   *widget.Button
	deleteButton *widget.Button

	newHandler    func()
	saveHandler   func()
	deleteHandler func()
}

// NewActionBar creates a new action bar component
func NewActionBar() *ActionBar {
	ab := &ActionBar{}
	ab.createComponents()
	ab.buildLayout()
	ab.setupEventHandlers()
	return ab
}

func (ab *ActionBar) createComponents() {
	ab.newButton = widget.NewButton("New", nil)

	ab.saveButton = widget.NewButton("Save", nil)
	ab.saveButton.Importance = widget.HighImportance

	ab.deleteButton = widget.NewButton("Delete", nil)
	ab.deleteButton.Importance = widget.DangerImportance
}

func (ab *ActionBar) buildLayout() {
	ab.container = container.NewCenter(
		container.NewHBox(ab.newButton, ab.saveButton, ab.deleteButton),
	)
}

func (ab *ActionBar) setupEventHandlers() {
	ab.newButton.OnTapped = func() {
		if ab.newHandler != nil {
			ab.newHandler()
		}
	}

	ab.saveButton.OnTapped = func() {
		if ab.saveHandler != nil {
			ab.saveHandler()
		}
	}

	ab.deleteButton.OnTapped = func() {
		if ab.deleteHandler != nil {
			ab.deleteHandler()
		}
	}
}

func (ab *ActionBar) SetNewHandler(handler func()) {
	ab.newHandler = handler
}

func (ab *ActionBar) SetSaveHandler(handler func()) {
	ab.saveHandler = handler
}

func (ab *ActionBar) SetDeleteHandler(handler func()) {
	ab.deleteHandler = handler
}

// EnableDelete toggles the Delete button. There is no record to delete in
// New mode.
func (ab *ActionBar) EnableDelete(enabled bool) {
	if enabled {
		ab.deleteButton.Enable()
	} else {
		ab.deleteButton.Disable()
	}
}

// GetContainer returns the action bar container
func (ab *ActionBar) GetContainer() *fyne.Container {
	return ab.container
}

// Buttons returns New, Save and Delete.
func (ab *ActionBar) Buttons() []*widget.Button {
	return []*widget.Button{ab.newButton, ab.saveButton, ab.deleteButton}
}
