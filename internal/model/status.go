package model

import (
	"fmt"
	"strings"
)

// Status messages reported by the caption session
const (
	// StatusNoFolderSelected means load was called without a folder
	StatusNoFolderSelected = "No folder selected"

	// StatusNoPNGFiles means the folder was scanned but held no images
	StatusNoPNGFiles = "No PNG files found in the selected folder"

	// StatusNoImagesLoaded means the operation needs a loaded folder
	StatusNoImagesLoaded = "No images loaded"

	// StatusInvalidNumber means the jump input is not an integer
	StatusInvalidNumber = "Please enter a valid number"

	// StatusInvalidImageNumber means the jump target is out of range
	StatusInvalidImageNumber = "Invalid image number"

	// StatusCleared means the session was reset
	StatusCleared = "All fields cleared"
)

const (
	showingImageFormat = "Showing image %d of %d"
	captionSavedFormat = "Caption saved for image %d"
	saveErrorPrefix    = "Error saving caption: "
)

// ShowingImage formats the status for a displayed image. position is zero-based.
func ShowingImage(position, total int) string {
	return fmt.Sprintf(showingImageFormat, position+1, total)
}

// CaptionSaved formats the status for a successful save. position is zero-based.
func CaptionSaved(position int) string {
	return fmt.Sprintf(captionSavedFormat, position+1)
}

// SaveFailed formats the status for a failed save
func SaveFailed(err error) string {
	return saveErrorPrefix + err.Error()
}

// Severity classifies a status message for display
type Severity string

const (
	// SeverityInfo is a neutral message such as the current position
	SeverityInfo Severity = "Info"

	// SeveritySuccess confirms a completed write
	SeveritySuccess Severity = "Success"

	// SeverityWarning reports rejected input or an empty selection
	SeverityWarning Severity = "Warning"

	// SeverityError reports a failed write
	SeverityError Severity = "Error"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}

// Classify returns the severity of a status message produced by the session
func Classify(status string) Severity {
	switch {
	case strings.HasPrefix(status, saveErrorPrefix):
		return SeverityError
	case strings.HasPrefix(status, "Caption saved for image "):
		return SeveritySuccess
	case status == StatusNoFolderSelected,
		status == StatusNoPNGFiles,
		status == StatusNoImagesLoaded,
		status == StatusInvalidNumber,
		status == StatusInvalidImageNumber:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
