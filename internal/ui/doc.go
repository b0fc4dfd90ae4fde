package ui

// Package ui contains the Fyne-based desktop user interface. Every control
// calls one caption session operation and renders the returned pair
// verbatim; the UI holds no caption or image logic of its own. Labels are
// localized via Localization, session status messages are shown as returned.
