package shell_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-feedback/mirror/internal/shell"
)

func TestExitError(t *testing.T) {
	err := shell.NewExitError(3)

	assert.Equal(t, "shell exited with 3", err.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
		ok       bool
	}{
		{"exit error", shell.NewExitError(3), 3, true},
		{"wrapped", fmt.Errorf("wrapped: %w", shell.NewExitError(4)), 4, true},
		{"zero", shell.NewExitError(0), 0, true},
		{"other", errors.New("other"), 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := shell.ExitCode(tt.err)

			assert.Equal(t, tt.expected, code)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
