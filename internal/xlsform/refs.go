package xlsform

import (
	"regexp"
	"strings"
)

// varRefPattern matches ${...} substitution markers in expression text.
// The body may carry a path-like qualifier (${/data/group/name}); only the
// trailing component names an element.
var varRefPattern = regexp.MustCompile(`\$\{([^{}]*)\}`)

// ExtractRefs scans text for ${...} references and returns the referenced
// element names in first-occurrence order, filtered against the known-name
// set. The scan is deliberately permissive: it is a best-effort token scan,
// not an expression parser. Tokens that do not resolve to a known name are
// ignored, duplicates collapse, and empty text yields no references.
func ExtractRefs(text string, known map[string]bool) []string {
	if text == "" || !strings.Contains(text, "${") {
		return nil
	}
	var refs []string
	var seen map[string]bool
	for _, m := range varRefPattern.FindAllStringSubmatch(text, -1) {
		name := RefName(m[1])
		if name == "" || !known[name] || seen[name] {
			continue
		}
		if seen == nil {
			seen = make(map[string]bool)
		}
		seen[name] = true
		refs = append(refs, name)
	}
	return refs
}

// RefName normalizes the body of a substitution marker to an element name:
// surrounding whitespace is trimmed and any path qualifier is dropped,
// keeping only the component after the final slash.
func RefName(body string) string {
	name := strings.TrimSpace(body)
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = strings.TrimSpace(name[i+1:])
	}
	return name
}
