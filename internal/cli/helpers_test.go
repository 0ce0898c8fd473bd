package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rshade/contentbatch/internal/cli"
	"github.com/rshade/contentbatch/internal/config"
)

// setupCLITest isolates the config directory and global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("CONTENTBATCH_HOME", home)
	t.Setenv("CONTENTBATCH_LOG_LEVEL", "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// executeCmd runs the root command with args and returns stdout and stderr.
// The global config is reset first, as it would be in a new process.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCmdContext(t, context.Background(), args...)
}

// executeCmdContext is executeCmd with a caller-controlled context.
func executeCmdContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	config.ResetGlobalConfigForTest()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
