package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"default scenario", []string{"-l", "error"}, false},
		{"audit file", []string{"-l", "error", "-f", filepath.Join(t.TempDir(), "audit.log")}, false},
		{"bad log level", []string{"-l", "loud"}, true},
		{"missing scenario", []string{"-l", "error", "-s", filepath.Join(t.TempDir(), "missing.yaml")}, true},
		{"unknown flag", []string{"--bogus"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.args)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
