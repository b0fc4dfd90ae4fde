package platform

import "strings"

// pather is satisfied by fyne.URI and fyne.ListableURI
type pather interface {
	Path() string
}

// NormalizeFolderArg converts the folder value handed over by a UI widget
// into a plain path. Lists contribute their first element, keyed structures
// their "path" entry. Anything unrecognised yields an empty path.
func NormalizeFolderArg(v any) string {
	switch arg := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(arg)
	case []string:
		if len(arg) == 0 {
			return ""
		}
		return NormalizeFolderArg(arg[0])
	case []any:
		if len(arg) == 0 {
			return ""
		}
		return NormalizeFolderArg(arg[0])
	case map[string]string:
		return NormalizeFolderArg(arg["path"])
	case map[string]any:
		return NormalizeFolderArg(arg["path"])
	case pather:
		return strings.TrimSpace(arg.Path())
	default:
		return ""
	}
}
