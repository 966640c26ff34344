package wordpress

import "strings"

const (
	apiRoot      = "/wp-json"
	apiVersion   = "/wp/v2"
	versionedAPI = apiRoot + apiVersion
	menusAPI     = "/menus/v1/menus"
)

// NormalizeBaseURL turns whatever the operator configured into the versioned
// REST root, e.g. https://cms.example.org/wp-json/wp/v2. Empty input yields an
// empty string, meaning the integration cannot be used.
func NormalizeBaseURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return ""
	}

	switch {
	case strings.HasSuffix(trimmed, versionedAPI):
		return trimmed
	case strings.Contains(trimmed, apiRoot):
		return trimmed + apiVersion
	default:
		return trimmed + versionedAPI
	}
}

// MenuBaseURL derives the menus plugin root from a normalized REST root.
func MenuBaseURL(base string) string {
	if base == "" {
		return ""
	}
	return strings.TrimSuffix(base, apiVersion) + menusAPI
}
