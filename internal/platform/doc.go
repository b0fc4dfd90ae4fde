package platform

// Package platform contains OS/platform integration: the image/caption
// filesystem contract, home folder discovery, the folder allow-list, native
// folder picker adapters, and OS open/reveal helpers.
