// Package language holds the fixed table of languages offered in the
// source and target selectors and maps display names to language codes.
package language

// Codes with special meaning
const (
	// AutoCode asks the remote service to detect the source language
	AutoCode = "auto"

	// DefaultSourceCode is used when a source display name is unknown
	DefaultSourceCode = AutoCode

	// DefaultTargetCode is used when a target display name is unknown
	DefaultTargetCode = "en"
)

// Default selections shown on first start
const (
	DefaultSourceName = "Auto Detect"
	DefaultTargetName = "English"
)

// Entry pairs a human-readable name with its language code
type Entry struct {
	DisplayName string
	Code        string
}

// entries is ordered the way the selectors list them
var entries = []Entry{
	{"Auto Detect", AutoCode},
	{"English", "en"},
	{"Hindi", "hi"},
	{"Telugu", "te"},
	{"Tamil", "ta"},
	{"Kannada", "kn"},
	{"Malayalam", "ml"},
	{"French", "fr"},
	{"German", "de"},
	{"Spanish", "es"},
	{"Italian", "it"},
	{"Chinese", "zh"},
	{"Japanese", "ja"},
	{"Korean", "ko"},
	{"Arabic", "ar"},
}

var (
	byName = make(map[string]string, len(entries))
	byCode = make(map[string]string, len(entries))
)

func init() {
	for _, e := range entries {
		byName[e.DisplayName] = e.Code
		byCode[e.Code] = e.DisplayName
	}
}

// Entries returns a copy of the registry in display order
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Names returns all display names, including "Auto Detect"
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.DisplayName)
	}
	return names
}

// TargetNames returns display names valid as a translation target.
// The auto-detect sentinel is only meaningful as a source.
func TargetNames() []string {
	names := make([]string, 0, len(entries)-1)
	for _, e := range entries {
		if e.Code == AutoCode {
			continue
		}
		names = append(names, e.DisplayName)
	}
	return names
}

// Resolve returns the code for displayName, or fallback when it is unknown
func Resolve(displayName, fallback string) string {
	if code, ok := byName[displayName]; ok {
		return code
	}
	return fallback
}

// ResolveSource resolves a source selection, falling back to auto-detect
func ResolveSource(displayName string) string {
	return Resolve(displayName, DefaultSourceCode)
}

// ResolveTarget resolves a target selection, falling back to English
func ResolveTarget(displayName string) string {
	code := Resolve(displayName, DefaultTargetCode)
	if code == AutoCode {
		return DefaultTargetCode
	}
	return code
}

// NameOf returns the display name for code and whether it is known
func NameOf(code string) (string, bool) {
	name, ok := byCode[code]
	return name, ok
}

// IsKnownName reports whether displayName is in the registry
func IsKnownName(displayName string) bool {
	_, ok := byName[displayName]
	return ok
}
