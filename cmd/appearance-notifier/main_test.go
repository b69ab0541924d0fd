package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortenPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		contains string
	}{
		{"home path", "/Users/test/file.txt", ""},
		{"non-home path", "/var/log/test.log", "/var/log/test.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shortenPath(tt.path)
			if tt.contains != "" {
				assert.Contains(t, result, tt.contains)
			}
		})
	}
}

func TestAgentLabel(t *testing.T) {
	assert.Equal(t, "com.appearancenotifier.agent", agentLabel)
}
