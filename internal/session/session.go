package session

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/caption-editor/internal/model"
	"github.com/ytget/caption-editor/internal/platform"
)

// Session tracks the loaded images and the current position
type Session struct {
	id       string
	images   []string
	position int
	folder   string
	logger   zerolog.Logger
}

// New creates an empty session
func New(logger zerolog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		logger: logger.With().Str("session", id).Logger(),
	}
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// Images returns a copy of the loaded image paths
func (s *Session) Images() []string {
	images := make([]string, len(s.images))
	copy(images, s.images)
	return images
}

// Len returns the number of loaded images
func (s *Session) Len() int {
	return len(s.images)
}

// Position returns the zero-based index of the current image
func (s *Session) Position() int {
	return s.position
}

// Folder returns the last loaded folder, or "" when none is loaded
func (s *Session) Folder() string {
	return s.folder
}

// Load scans folder for PNG images and selects the first one. An empty
// folder argument leaves the session untouched.
func (s *Session) Load(folder string) model.Pair {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return model.Pair{Status: model.StatusNoFolderSelected}
	}

	images, err := platform.ScanImages(folder)
	if err != nil {
		s.logger.Warn().Err(err).Str("folder", folder).Msg("scan failed")
		images = nil
	}

	s.folder = folder
	s.images = images
	s.position = 0

	if len(images) == 0 {
		s.logger.Info().Str("folder", folder).Msg("no images found")
		return model.Pair{Status: model.StatusNoPNGFiles}
	}

	s.logger.Info().Str("folder", folder).Int("images", len(images)).Msg("folder loaded")
	return s.Current()
}

// Current returns the current image with its caption
func (s *Session) Current() model.Pair {
	if len(s.images) == 0 {
		return model.Pair{Status: model.StatusNoImagesLoaded}
	}

	image := s.images[s.position]
	caption, err := platform.ReadCaption(image)
	if err != nil {
		s.logger.Error().Err(err).Str("image", image).Msg("read caption")
		caption = ""
	}

	return model.Pair{
		Image:   image,
		Caption: caption,
		Status:  model.ShowingImage(s.position, len(s.images)),
	}
}

// Next moves to the following image. It stays on the last image.
func (s *Session) Next() model.Pair {
	if s.position < len(s.images)-1 {
		s.position++
	}
	return s.Current()
}

// Previous moves to the preceding image. It stays on the first image.
func (s *Session) Previous() model.Pair {
	if s.position > 0 {
		s.position--
	}
	return s.Current()
}

// Save writes caption verbatim to the current image's caption file
func (s *Session) Save(caption string) model.Pair {
	if len(s.images) == 0 {
		return model.Pair{Caption: caption, Status: model.StatusNoImagesLoaded}
	}

	image := s.images[s.position]
	if err := platform.WriteCaption(image, caption); err != nil {
		s.logger.Error().Err(err).Str("image", image).Msg("save caption")
		return model.Pair{Image: image, Caption: caption, Status: model.SaveFailed(err)}
	}

	s.logger.Debug().Str("image", image).Int("bytes", len(caption)).Msg("caption saved")
	return model.Pair{Image: image, Caption: caption, Status: model.CaptionSaved(s.position)}
}

// JumpTo selects the image with the given 1-based number, supplied as text
func (s *Session) JumpTo(input string) model.Pair {
	number, ok := parseImageNumber(input)
	if !ok {
		return s.withStatus(model.StatusInvalidNumber)
	}
	return s.JumpToNumber(number)
}

// JumpToNumber selects the image with the given 1-based number
func (s *Session) JumpToNumber(number int) model.Pair {
	index := number - 1
	if index < 0 || index >= len(s.images) {
		return s.withStatus(model.StatusInvalidImageNumber)
	}
	s.position = index
	return s.Current()
}

// Clear resets the session to its initial empty state
func (s *Session) Clear() model.ClearResult {
	s.images = nil
	s.position = 0
	s.folder = ""
	s.logger.Info().Msg("session cleared")

	return model.ClearResult{
		Pair:      model.Pair{Status: model.StatusCleared},
		JumpValue: model.DefaultJumpValue,
	}
}

// withStatus returns the unchanged current pair with a different status
func (s *Session) withStatus(status string) model.Pair {
	pair := s.Current()
	pair.Status = status
	return pair
}

// parseImageNumber accepts integers and integral decimals such as "3.0",
// which is what numeric input widgets submit.
func parseImageNumber(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, true // a number, but never a valid image number
	}
	return int(f), true
}
