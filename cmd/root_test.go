package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())
}

func TestRun_ExitCodes(t *testing.T) {
	assert.Equal(t, 0, run(context.Background(), []string{appName, "--help"}))
	assert.Equal(t, 1, run(context.Background(), []string{appName, "--no-such-flag"}))
}

func TestRootCommands(t *testing.T) {
	var names []string
	for _, cmd := range rootApp.Commands {
		names = append(names, cmd.Name)
	}

	assert.ElementsMatch(t, []string{"lambda", "run", "serve"}, names)
}
