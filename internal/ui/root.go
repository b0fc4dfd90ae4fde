package ui

import (
	"context"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/caption-editor/internal/config"
	"github.com/ytget/caption-editor/internal/logging"
	"github.com/ytget/caption-editor/internal/model"
	"github.com/ytget/caption-editor/internal/platform"
	"github.com/ytget/caption-editor/internal/session"
)

// availability is implemented by pickers that can tell up front whether a
// dialog can be shown on this host
type availability interface {
	Available() bool
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      *session.Session
	settings     *config.Settings
	localization *Localization
	allow        *platform.AllowList
	picker       platform.FolderPicker
	logger       zerolog.Logger

	folderEntry  *widget.Entry
	browseBtn    *widget.Button
	loadBtn      *widget.Button
	clearBtn     *widget.Button
	imageCard    *widget.Card
	image        *canvas.Image
	captionCard  *widget.Card
	captionPane  *fyne.Container
	captionEntry *captionEntry
	prevBtn      *widget.Button
	nextBtn      *widget.Button
	saveBtn      *widget.Button
	jumpLabel    *widget.Label
	jumpEntry    *widget.Entry
	jumpBtn      *widget.Button
	openBtn      *widget.Button
	revealBtn    *widget.Button
	statusTitle  *widget.Label
	statusLabel  *widget.Label

	currentImage string
}

// NewRootUI creates and initializes the main UI. picker may be nil, in which
// case Browse always uses Fyne's folder dialog.
func NewRootUI(window fyne.Window, app fyne.App, sess *session.Session, allow *platform.AllowList, picker platform.FolderPicker) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if allow == nil {
		allow = platform.NewAllowList()
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      sess,
		settings:     settings,
		localization: localization,
		allow:        allow,
		picker:       picker,
		logger:       logging.Component("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.registerShortcuts()

	// Pre-fill the folder loaded in the previous run; loading stays explicit.
	ui.folderEntry.SetText(settings.GetLastFolder())

	ui.logger.Debug().Str("session", sess.ID()).Msg("root UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Folder row
	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetPlaceHolder(ui.localization.GetText(KeyFolderPlaceholder))
	ui.folderEntry.OnSubmitted = func(string) { ui.onLoad() }

	ui.browseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyBrowse), ui.onBrowse)
	ui.loadBtn = widget.NewButton(ui.localization.GetText(KeyLoadFolder), ui.onLoad)
	ui.loadBtn.Importance = widget.HighImportance
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearAll), ui.onClear)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn,
		container.NewHBox(ui.browseBtn, ui.loadBtn, ui.clearBtn), ui.folderEntry)

	// Image and caption side by side
	ui.image = canvas.NewImageFromFile("")
	ui.image.FillMode = canvas.ImageFillContain
	ui.image.SetMinSize(fyne.NewSize(ImageMinWidth, ImageMinHeight))

	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpenImage), ui.onOpenImage)
	ui.revealBtn = widget.NewButton(ui.localization.GetText(KeyRevealImage), ui.onRevealImage)
	imageActions := container.NewHBox(ui.openBtn, ui.revealBtn)
	ui.imageCard = widget.NewCard(ui.localization.GetText(KeyImage), "",
		container.NewBorder(nil, imageActions, nil, nil, ui.image))

	ui.captionEntry = newCaptionEntry(ui.handleShortcut)
	ui.captionCard = widget.NewCard(ui.localization.GetText(KeyCaption), "", ui.captionEntry)

	// Keeps the caption readable when the split is dragged towards it.
	captionWidth := canvas.NewRectangle(color.Transparent)
	captionWidth.SetMinSize(fyne.NewSize(CaptionMinWidth, 0))
	ui.captionPane = container.NewStack(captionWidth, ui.captionCard)

	split := container.NewHSplit(ui.imageCard, ui.captionPane)
	split.Offset = 0.6

	// Navigation, save and jump
	ui.prevBtn = widget.NewButton(IconPrevious+" "+ui.localization.GetText(KeyPrevious), ui.onPrevious)
	ui.nextBtn = widget.NewButton(ui.localization.GetText(KeyNext)+" "+IconNext, ui.onNext)
	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySaveCaption), ui.onSave)
	ui.saveBtn.Importance = widget.HighImportance
	navRow := container.NewGridWithColumns(3, ui.prevBtn, ui.nextBtn, ui.saveBtn)

	ui.jumpLabel = widget.NewLabel(ui.localization.GetText(KeyJumpTo))
	ui.jumpEntry = widget.NewEntry()
	ui.jumpEntry.SetText(DefaultJumpEntryText)
	ui.jumpEntry.OnSubmitted = func(string) { ui.onJump() }
	ui.jumpBtn = widget.NewButton(ui.localization.GetText(KeyGo), ui.onJump)
	jumpRow := container.NewBorder(nil, nil, ui.jumpLabel, ui.jumpBtn, ui.jumpEntry)

	ui.statusTitle = widget.NewLabelWithStyle(ui.localization.GetText(KeyStatus)+":", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	statusRow := container.NewBorder(nil, nil, ui.statusTitle, nil, ui.statusLabel)

	bottom := container.NewVBox(navRow, jumpRow, widget.NewSeparator(), statusRow)

	content := container.NewBorder(
		topPanel, // top
		bottom,   // bottom
		nil,      // left
		nil,      // right
		split,    // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyBrowse)+"…", ui.onBrowse)
	copyItem := fyne.NewMenuItem(ui.localization.GetText(KeyCopyImagePath), ui.onCopyPath)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, copyItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.folderEntry.SetPlaceHolder(l.GetText(KeyFolderPlaceholder))
	ui.browseBtn.SetText(IconFolder + " " + l.GetText(KeyBrowse))
	ui.loadBtn.SetText(l.GetText(KeyLoadFolder))
	ui.clearBtn.SetText(l.GetText(KeyClearAll))
	ui.imageCard.SetTitle(l.GetText(KeyImage))
	ui.captionCard.SetTitle(l.GetText(KeyCaption))
	ui.openBtn.SetText(l.GetText(KeyOpenImage))
	ui.revealBtn.SetText(l.GetText(KeyRevealImage))
	ui.prevBtn.SetText(IconPrevious + " " + l.GetText(KeyPrevious))
	ui.nextBtn.SetText(l.GetText(KeyNext) + " " + IconNext)
	ui.saveBtn.SetText(l.GetText(KeySaveCaption))
	ui.jumpLabel.SetText(l.GetText(KeyJumpTo))
	ui.jumpBtn.SetText(l.GetText(KeyGo))
	ui.statusTitle.SetText(l.GetText(KeyStatus) + ":")
}

// onLoad loads the folder typed into the folder entry
func (ui *RootUI) onLoad() {
	ui.loadFolder(platform.NormalizeFolderArg(ui.folderEntry.Text))
}

// UseConfigLanguage shows lang until the user picks a language in the app
func (ui *RootUI) UseConfigLanguage(lang string) {
	ui.settings.SetFallbackLanguage(lang)
	if ui.settings.HasLanguage() {
		return
	}
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// LoadFolder fills the folder entry and loads it, as if typed by the user
func (ui *RootUI) LoadFolder(folder string) {
	ui.folderEntry.SetText(folder)
	ui.onLoad()
}

// loadFolder checks the allow-list and hands the folder to the session.
// An empty folder goes straight to the session, which reports it.
func (ui *RootUI) loadFolder(folder string) {
	if folder != "" && !ui.allow.Permits(folder) {
		ui.logger.Warn().Str("folder", folder).Strs("allowed", ui.allow.Roots()).Msg("folder rejected")
		ui.setStatus(ui.localization.GetText(KeyFolderNotAllowed), model.SeverityWarning)
		return
	}

	pair := ui.session.Load(folder)
	ui.applyPair(pair)
	if pair.HasImage() {
		ui.settings.SetLastFolder(ui.session.Folder())
	}
}

// onBrowse opens a folder dialog and loads the chosen folder
func (ui *RootUI) onBrowse() {
	if ui.picker == nil || ui.settings.GetPickerMode() == config.PickerFyne {
		ui.showFyneFolderDialog()
		return
	}
	if a, ok := ui.picker.(availability); ok && !a.Available() {
		// Prints the one-line diagnostic, then falls back to Fyne's dialog.
		_, _, _ = ui.picker.PickFolder(context.Background(), "")
		ui.showFyneFolderDialog()
		return
	}

	title := ui.localization.GetText(KeyPickerTitle)
	go func() {
		path, ok, err := ui.picker.PickFolder(context.Background(), title)
		fyne.Do(func() {
			ui.handlePickedFolder(path, ok, err)
		})
	}()
}

// handlePickedFolder applies the result of a folder dialog. A cancelled
// dialog loads the empty folder, which the session reports as no selection.
func (ui *RootUI) handlePickedFolder(path string, ok bool, err error) {
	if err != nil {
		ui.logger.Error().Err(err).Msg("folder dialog")
		ui.setStatus(ui.localization.GetText(KeyPickerFailed)+": "+err.Error(), model.SeverityError)
		return
	}
	if !ok {
		path = ""
	}
	if path != "" {
		ui.folderEntry.SetText(path)
	}
	ui.loadFolder(path)
}

// showFyneFolderDialog uses Fyne's own folder dialog
func (ui *RootUI) showFyneFolderDialog() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.handlePickedFolder("", false, err)
			return
		}
		path := platform.NormalizeFolderArg(uri)
		ui.handlePickedFolder(path, path != "", nil)
	}, ui.window)
}

// onPrevious moves to the previous image. Unsaved caption edits are dropped.
func (ui *RootUI) onPrevious() {
	ui.applyPair(ui.session.Previous())
}

// onNext moves to the next image. Unsaved caption edits are dropped.
func (ui *RootUI) onNext() {
	ui.applyPair(ui.session.Next())
}

// onSave saves the caption entry text for the current image
func (ui *RootUI) onSave() {
	ui.applyPair(ui.session.Save(ui.captionEntry.Text))
}

// onJump jumps to the image number typed into the jump entry
func (ui *RootUI) onJump() {
	ui.applyPair(ui.session.JumpTo(ui.jumpEntry.Text))
}

// onClear resets the session and blanks every field
func (ui *RootUI) onClear() {
	ui.applyClear(ui.session.Clear())
}

// applyPair renders an operation result verbatim
func (ui *RootUI) applyPair(pair model.Pair) {
	ui.currentImage = pair.Image
	ui.image.File = pair.Image
	ui.image.Resource = nil
	ui.image.Refresh()

	ui.captionEntry.SetText(pair.Caption)
	ui.setStatus(pair.Status, pair.Severity())
}

// applyClear renders the clear result, including the folder and jump fields
func (ui *RootUI) applyClear(result model.ClearResult) {
	ui.applyPair(result.Pair)
	ui.folderEntry.SetText(result.FolderDisplay)
	ui.jumpEntry.SetText(strconv.Itoa(result.JumpValue))
	ui.settings.SetLastFolder("")
}

// setStatus shows a status message colored by severity
func (ui *RootUI) setStatus(status string, severity model.Severity) {
	switch severity {
	case model.SeveritySuccess:
		ui.statusLabel.Importance = widget.SuccessImportance
	case model.SeverityWarning:
		ui.statusLabel.Importance = widget.WarningImportance
	case model.SeverityError:
		ui.statusLabel.Importance = widget.DangerImportance
	default:
		ui.statusLabel.Importance = widget.MediumImportance
	}
	ui.statusLabel.SetText(status)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.allow, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// onOpenImage opens the current image in the default viewer
func (ui *RootUI) onOpenImage() {
	ui.withCurrentImage(platform.OpenFileWithDefaultApp)
}

// onRevealImage shows the current image in the system file manager
func (ui *RootUI) onRevealImage() {
	ui.withCurrentImage(platform.OpenFileInManager)
}

func (ui *RootUI) withCurrentImage(action func(string) error) {
	if ui.currentImage == "" {
		ui.setStatus(ui.localization.GetText(KeyNoImageSelected), model.SeverityWarning)
		return
	}
	if err := action(ui.currentImage); err != nil {
		ui.logger.Error().Err(err).Str("image", ui.currentImage).Msg("open image")
		ui.setStatus(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), model.SeverityError)
	}
}

// onCopyPath copies the current image path to the clipboard
func (ui *RootUI) onCopyPath() {
	if ui.currentImage == "" {
		ui.setStatus(ui.localization.GetText(KeyNoImageSelected), model.SeverityWarning)
		return
	}
	ui.app.Clipboard().SetContent(ui.currentImage)
	ui.setStatus(ui.localization.GetText(KeyPathCopied), model.SeverityInfo)
}
