package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFolderPlaceholder = "folder_placeholder"
	KeyBrowse            = "browse"
	KeyLoadFolder        = "load_folder"
	KeyClearAll          = "clear_all"
	KeyImage             = "image"
	KeyCaption           = "caption"
	KeyPrevious          = "previous"
	KeyNext              = "next"
	KeySaveCaption       = "save_caption"
	KeyJumpTo            = "jump_to"
	KeyGo                = "go"
	KeyStatus            = "status"
	KeyOpenImage         = "open_image"
	KeyRevealImage       = "reveal_image"
	KeyCopyImagePath     = "copy_image_path"
	KeyPathCopied        = "path_copied"
	KeyNoImageSelected   = "no_image_selected"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyFolderNotAllowed  = "folder_not_allowed"
	KeyPickerFailed      = "picker_failed"
	KeyPickerTitle       = "picker_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyFolderDialog      = "folder_dialog"
	KeyAllowedFolders    = "allowed_folders"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Caption Editor",
		KeyFolderPlaceholder: "e.g., /path/to/your/images/folder",
		KeyBrowse:            "Browse",
		KeyLoadFolder:        "Load Folder",
		KeyClearAll:          "Clear All Fields",
		KeyImage:             "Image",
		KeyCaption:           "Caption",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeySaveCaption:       "Save Caption",
		KeyJumpTo:            "Go to image",
		KeyGo:                "Go",
		KeyStatus:            "Status",
		KeyOpenImage:         "Open Image",
		KeyRevealImage:       "Show in Folder",
		KeyCopyImagePath:     "Copy Image Path",
		KeyPathCopied:        "Path copied to clipboard",
		KeyNoImageSelected:   "No image selected",
		KeyErrorOpeningFile:  "Error opening file",
		KeyFolderNotAllowed:  "Folder is outside the allowed locations",
		KeyPickerFailed:      "Folder dialog failed",
		KeyPickerTitle:       "Select image folder",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyFolderDialog:      "Folder Dialog",
		KeyAllowedFolders:    "Allowed Folders",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Редактор подписей",
		KeyFolderPlaceholder: "например, /путь/к/папке/с/изображениями",
		KeyBrowse:            "Обзор",
		KeyLoadFolder:        "Загрузить папку",
		KeyClearAll:          "Очистить всё",
		KeyImage:             "Изображение",
		KeyCaption:           "Подпись",
		KeyPrevious:          "Назад",
		KeyNext:              "Вперёд",
		KeySaveCaption:       "Сохранить подпись",
		KeyJumpTo:            "Перейти к",
		KeyGo:                "Перейти",
		KeyStatus:            "Статус",
		KeyOpenImage:         "Открыть изображение",
		KeyRevealImage:       "Показать в папке",
		KeyCopyImagePath:     "Копировать путь",
		KeyPathCopied:        "Путь скопирован",
		KeyNoImageSelected:   "Изображение не выбрано",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyFolderNotAllowed:  "Папка вне разрешённых расположений",
		KeyPickerFailed:      "Ошибка диалога выбора папки",
		KeyPickerTitle:       "Выберите папку с изображениями",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyFolderDialog:      "Диалог выбора папки",
		KeyAllowedFolders:    "Разрешённые папки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Editor de Legendas",
		KeyFolderPlaceholder: "ex., /caminho/para/a/pasta/de/imagens",
		KeyBrowse:            "Navegar",
		KeyLoadFolder:        "Carregar Pasta",
		KeyClearAll:          "Limpar Tudo",
		KeyImage:             "Imagem",
		KeyCaption:           "Legenda",
		KeyPrevious:          "Anterior",
		KeyNext:              "Próxima",
		KeySaveCaption:       "Salvar Legenda",
		KeyJumpTo:            "Ir para imagem",
		KeyGo:                "Ir",
		KeyStatus:            "Status",
		KeyOpenImage:         "Abrir Imagem",
		KeyRevealImage:       "Mostrar na Pasta",
		KeyCopyImagePath:     "Copiar Caminho",
		KeyPathCopied:        "Caminho copiado",
		KeyNoImageSelected:   "Nenhuma imagem selecionada",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyFolderNotAllowed:  "Pasta fora dos locais permitidos",
		KeyPickerFailed:      "Falha no diálogo de pasta",
		KeyPickerTitle:       "Selecione a pasta de imagens",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyFolderDialog:      "Diálogo de Pasta",
		KeyAllowedFolders:    "Pastas Permitidas",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
