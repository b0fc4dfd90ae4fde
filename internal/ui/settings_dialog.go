package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/caption-editor/internal/config"
	"github.com/ytget/caption-editor/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	allow        *platform.AllowList
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	pickerSelect   *widget.RadioGroup
	allowedList    *widget.Label

	// maps display labels back to language codes
	languageByLabel map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, allow *platform.AllowList, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		allow:        allow,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, allow *platform.AllowList, onSaved func()) {
	NewSettingsDialog(window, settings, localization, allow, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Language selection, shown by display name
	sd.languageByLabel = make(map[string]string)
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	pickerOptions := []string{}
	for _, mode := range sd.settings.GetPickerModeOptions() {
		pickerOptions = append(pickerOptions, string(mode))
	}
	sd.pickerSelect = widget.NewRadioGroup(pickerOptions, nil)
	sd.pickerSelect.Horizontal = true
	sd.pickerSelect.Required = true

	sd.allowedList = widget.NewLabel("")
	sd.allowedList.Wrapping = fyne.TextWrapBreak

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(l.GetText(KeyFolderDialog)+":"),
		sd.pickerSelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyAllowedFolders)+":"),
		sd.allowedList,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for label, code := range sd.languageByLabel {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
	sd.pickerSelect.SetSelected(string(sd.settings.GetPickerMode()))

	roots := []string{"-"}
	if sd.allow != nil && len(sd.allow.Roots()) > 0 {
		roots = sd.allow.Roots()
	}
	sd.allowedList.SetText(strings.Join(roots, "\n"))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Only a changed language counts as the user's pick.
	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
	}
	if sd.pickerSelect.Selected != "" {
		sd.settings.SetPickerMode(config.PickerMode(sd.pickerSelect.Selected))
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
