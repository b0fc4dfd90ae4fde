package session

// Package session implements the caption session: the ordered list of PNG
// images loaded from one folder, the current position, and read/write access
// to the sidecar caption of the current image. Every operation returns a
// model.Pair and reports failures through its status message instead of
// returning errors.
//
// A Session is not safe for concurrent use. The presentation layer serializes
// calls, one user action at a time.
