package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voodooEntity/gits"
	"github.com/voodooEntity/gits/src/transport"
)

func TestUniqueID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := UniqueID()
		assert.Len(t, id, 22)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestStringInArray(t *testing.T) {
	tests := []struct {
		name     string
		haystack []string
		needle   string
		want     bool
	}{
		{
			name:     "present",
			haystack: []string{"a", "b", "c"},
			needle:   "b",
			want:     true,
		},
		{
			name:     "absent",
			haystack: []string{"a", "b", "c"},
			needle:   "d",
			want:     false,
		},
		{
			name:     "empty haystack",
			haystack: []string{},
			needle:   "a",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringInArray(tt.haystack, tt.needle))
		})
	}
}

func TestCopyStringStringMap(t *testing.T) {
	original := map[string]string{"a": "1", "b": "2"}
	copied := CopyStringStringMap(original)

	assert.Equal(t, original, copied)

	// mutating the copy must not touch the original
	copied["a"] = "changed"
	assert.Equal(t, "1", original["a"])
}

func TestIsAliveAndTerminate(t *testing.T) {
	gitsInstance := gits.NewInstance("util-test-alive")

	assert.False(t, IsAlive(gitsInstance))

	gitsInstance.MapData(transport.TransportEntity{
		ID:         0,
		Type:       "System",
		Value:      "PMLL",
		Context:    "System",
		Properties: map[string]string{"State": "Alive"},
	})
	assert.True(t, IsAlive(gitsInstance))

	assert.True(t, Terminate(gitsInstance))
	assert.False(t, IsAlive(gitsInstance))
}
