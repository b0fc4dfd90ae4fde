package model

// DefaultJumpValue is the jump input shown after a reset
const DefaultJumpValue = 1

// Pair is the (image, caption, status) tuple every session operation returns
type Pair struct {
	Image   string // image path, empty when no image is selected
	Caption string // caption text as it should be displayed
	Status  string // human readable status message
}

// HasImage reports whether the pair carries an image
func (p Pair) HasImage() bool {
	return p.Image != ""
}

// Severity returns the display severity of the pair's status
func (p Pair) Severity() Severity {
	return Classify(p.Status)
}

// ClearResult tells the presentation layer to blank every field
type ClearResult struct {
	Pair
	FolderDisplay string // text for the folder field, always empty
	JumpValue     int    // value for the jump input
}
