//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEscQuits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.CreateWorkspace()
	require.NoError(t, tf.WriteFile("a.txt", "x"))

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.WaitExit(5*time.Second), "esc should end the session")
	require.Equal(t, 0, tf.cmd.ProcessState.ExitCode(), "clean exit status")
}

func TestCtrlCQuits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.CreateWorkspace()
	require.NoError(t, tf.WriteFile("a.txt", "x"))

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyCtrlC))
	require.True(t, tf.WaitExit(5*time.Second), "ctrl+c should end the session")
}
