package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-cards/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"CardAppName", config.CardAppName},
		{"CardAppID", config.CardAppID},
		{"TaskAppName", config.TaskAppName},
		{"TaskAppID", config.TaskAppID},
		{"Version", config.Version},
		{"TagURL", config.TagURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}

	assert.NotEqual(t, config.CardAppID, config.TaskAppID, "Each app needs its own preferences store")
}

// TestLayout_Sanity checks that layout constants describe a drawable screen.
func TestLayout_Sanity(t *testing.T) {
	sizes := map[string]int{
		"CardNameFontSize":       config.CardNameFontSize,
		"CardTitleFontSize":      config.CardTitleFontSize,
		"ContactFontSize":        config.ContactFontSize,
		"TaskMessageFontSize":    config.TaskMessageFontSize,
		"TaskComplimentFontSize": config.TaskComplimentFontSize,
	}
	for name, v := range sizes {
		assert.Greater(t, v, 0, "%s must be positive", name)
	}

	// Headings are larger than body text.
	assert.Greater(t, config.CardNameFontSize, config.CardTitleFontSize)
	assert.Greater(t, config.TaskMessageFontSize, config.TaskComplimentFontSize)
}

func TestOverrideKeys_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range config.OverrideKeys {
		assert.False(t, seen[k], "duplicate override key %s", k)
		seen[k] = true
	}
	assert.Len(t, seen, 8)
}

func TestSupportedLanguages_ContainsDefault(t *testing.T) {
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}
