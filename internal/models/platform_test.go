package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Platform
		ok       bool
	}{
		{name: "steam exact", input: "Steam", expected: PlatformSteam, ok: true},
		{name: "steam lowercase", input: "steam", expected: PlatformSteam, ok: true},
		{name: "epic uppercase", input: "EPIC", expected: PlatformEpic, ok: true},
		{name: "padded", input: "  Steam  ", expected: PlatformSteam, ok: true},
		{name: "unknown", input: "GOG", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform, ok := ParsePlatform(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, platform)
			}
		})
	}
}
