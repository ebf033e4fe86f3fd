package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, e := range Entries() {
		if prev, dup := seen[e.Code]; dup {
			t.Errorf("code %q used by both %q and %q", e.Code, prev, e.DisplayName)
		}
		seen[e.Code] = e.DisplayName
	}
	assert.Len(t, seen, len(Entries()))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		fallback string
		expected string
	}{
		{"Hindi", "en", "hi"},
		{"Auto Detect", "en", "auto"},
		{"Klingon", "en", "en"},
		{"", "auto", "auto"},
		{"english", "xx", "xx"}, // lookups are exact
	}

	for _, test := range tests {
		result := Resolve(test.name, test.fallback)
		if result != test.expected {
			t.Errorf("Resolve(%q, %q) = %q, expected %q", test.name, test.fallback, result, test.expected)
		}
	}
}

func TestResolveSourceAndTargetFallbacks(t *testing.T) {
	assert.Equal(t, "auto", ResolveSource("Unknown"))
	assert.Equal(t, "ja", ResolveSource("Japanese"))

	assert.Equal(t, "en", ResolveTarget("Unknown"))
	assert.Equal(t, "ko", ResolveTarget("Korean"))
	assert.Equal(t, "en", ResolveTarget("Auto Detect"), "auto is never a valid target")
}

func TestNamesOrder(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.Equal(t, DefaultSourceName, names[0])
	assert.Equal(t, "Arabic", names[len(names)-1])

	targets := TargetNames()
	assert.Len(t, targets, len(names)-1)
	assert.NotContains(t, targets, DefaultSourceName)
	assert.Contains(t, targets, DefaultTargetName)
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf("hi")
	assert.True(t, ok)
	assert.Equal(t, "Hindi", name)

	_, ok = NameOf("xx")
	assert.False(t, ok)
}

func TestEntriesReturnsCopy(t *testing.T) {
	list := Entries()
	list[0].Code = "mutated"
	assert.Equal(t, AutoCode, Entries()[0].Code)
	assert.True(t, IsKnownName("Tamil"))
	assert.False(t, IsKnownName("Elvish"))
}
