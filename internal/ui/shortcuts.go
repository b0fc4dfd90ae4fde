package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Keyboard shortcuts for saving and navigation
var (
	shortcutSave     = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutPrevious = &desktop.CustomShortcut{KeyName: fyne.KeyLeft, Modifier: fyne.KeyModifierAlt}
	shortcutNext     = &desktop.CustomShortcut{KeyName: fyne.KeyRight, Modifier: fyne.KeyModifierAlt}
)

// captionEntry is a multi-line entry that forwards the editor shortcuts
// instead of consuming them while it has focus
type captionEntry struct {
	widget.Entry
	onShortcut func(fyne.Shortcut)
}

func newCaptionEntry(onShortcut func(fyne.Shortcut)) *captionEntry {
	e := &captionEntry{onShortcut: onShortcut}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.SetMinRowsVisible(CaptionEntryLines)
	e.ExtendBaseWidget(e)
	return e
}

// TypedShortcut implements fyne.Shortcutable
func (e *captionEntry) TypedShortcut(s fyne.Shortcut) {
	if isEditorShortcut(s) && e.onShortcut != nil {
		e.onShortcut(s)
		return
	}
	e.Entry.TypedShortcut(s)
}

func isEditorShortcut(s fyne.Shortcut) bool {
	switch s.ShortcutName() {
	case shortcutSave.ShortcutName(), shortcutPrevious.ShortcutName(), shortcutNext.ShortcutName():
		return true
	}
	return false
}

// registerShortcuts binds the editor shortcuts on the window canvas
func (ui *RootUI) registerShortcuts() {
	c := ui.window.Canvas()
	for _, s := range []*desktop.CustomShortcut{shortcutSave, shortcutPrevious, shortcutNext} {
		c.AddShortcut(s, ui.handleShortcut)
	}
}

// handleShortcut runs the action bound to a shortcut
func (ui *RootUI) handleShortcut(s fyne.Shortcut) {
	switch s.ShortcutName() {
	case shortcutSave.ShortcutName():
		ui.onSave()
	case shortcutPrevious.ShortcutName():
		ui.onPrevious()
	case shortcutNext.ShortcutName():
		ui.onNext()
	}
}
