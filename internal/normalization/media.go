package normalization

import "strings"

// MediaResolver turns CMS-relative upload paths into absolute URLs.
type MediaResolver struct {
	BaseURL string
}

func NewMediaResolver(baseURL string) MediaResolver {
	return MediaResolver{BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// Resolve joins path onto the base URL. An empty path gives "" and an
// already-absolute URL is returned unchanged.
func (m MediaResolver) Resolve(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return ""
	}
	if isAbsoluteURL(p) {
		return p
	}
	base := strings.TrimRight(m.BaseURL, "/")
	if base == "" {
		return p
	}
	return base + "/" + strings.TrimLeft(p, "/")
}

func isAbsoluteURL(s string) bool {
	if strings.HasPrefix(s, "//") {
		return true
	}
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	for _, c := range s[:i] {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.') {
			return false
		}
	}
	return true
}
