package model

import (
	"errors"
	"testing"
)

func TestShowingImage(t *testing.T) {
	tests := []struct {
		position, total int
		expected        string
	}{
		{0, 1, "Showing image 1 of 1"},
		{2, 3, "Showing image 3 of 3"},
		{9, 42, "Showing image 10 of 42"},
	}

	for _, test := range tests {
		result := ShowingImage(test.position, test.total)
		if result != test.expected {
			t.Errorf("ShowingImage(%d, %d) = %q, expected %q", test.position, test.total, result, test.expected)
		}
	}
}

func TestCaptionSaved(t *testing.T) {
	if got := CaptionSaved(0); got != "Caption saved for image 1" {
		t.Errorf("CaptionSaved(0) = %q", got)
	}
}

func TestSaveFailed(t *testing.T) {
	got := SaveFailed(errors.New("permission denied"))
	if got != "Error saving caption: permission denied" {
		t.Errorf("SaveFailed() = %q", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		status   string
		expected Severity
	}{
		{ShowingImage(0, 3), SeverityInfo},
		{StatusCleared, SeverityInfo},
		{CaptionSaved(4), SeveritySuccess},
		{SaveFailed(errors.New("disk full")), SeverityError},
		{StatusNoFolderSelected, SeverityWarning},
		{StatusNoPNGFiles, SeverityWarning},
		{StatusNoImagesLoaded, SeverityWarning},
		{StatusInvalidNumber, SeverityWarning},
		{StatusInvalidImageNumber, SeverityWarning},
	}

	for _, test := range tests {
		result := Classify(test.status)
		if result != test.expected {
			t.Errorf("Classify(%q) = %s, expected %s", test.status, result, test.expected)
		}
	}
}

func TestPair_HasImage(t *testing.T) {
	if (Pair{}).HasImage() {
		t.Error("empty pair should not have an image")
	}
	if !(Pair{Image: "/tmp/a.png"}).HasImage() {
		t.Error("pair with image path should have an image")
	}
}

func TestSeverity_String(t *testing.T) {
	if SeverityError.String() != "Error" {
		t.Errorf("Severity.String() = %s, expected Error", SeverityError.String())
	}
}
