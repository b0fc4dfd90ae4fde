package platform

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	installed map[string]bool
	out       string
	err       error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	if f.installed[file] {
		return "/usr/bin/" + file, nil
	}
	return "", exec.ErrNotFound
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.gotName = name
	f.gotArgs = args
	return []byte(f.out), f.err
}

func TestNativeFolderPicker_Darwin(t *testing.T) {
	runner := &fakeRunner{installed: map[string]bool{OsascriptCommand: true}, out: "/Users/me/Desktop/shots/\n"}
	picker := NewNativeFolderPicker(runner, OSDarwin, zerolog.Nop())

	path, ok, err := picker.PickFolder(context.Background(), `Pick "folder"`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/Users/me/Desktop/shots", path)
	assert.Equal(t, OsascriptCommand, runner.gotName)
	require.Len(t, runner.gotArgs, 2)
	assert.Contains(t, runner.gotArgs[1], `choose folder with prompt "Pick \"folder\""`)
}

func TestNativeFolderPicker_Windows(t *testing.T) {
	runner := &fakeRunner{installed: map[string]bool{PowershellCommand: true}, out: "C:\\Users\\me\\Desktop\r\n"}
	picker := NewNativeFolderPicker(runner, OSWindows, zerolog.Nop())

	_, ok, err := picker.PickFolder(context.Background(), "It's here")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, PowershellCommand, runner.gotName)
	assert.Contains(t, strings.Join(runner.gotArgs, " "), "'It''s here'")
}

func TestNativeFolderPicker_LinuxPrefersZenity(t *testing.T) {
	runner := &fakeRunner{
		installed: map[string]bool{ZenityCommand: true, KdialogCommand: true},
		out:       "/home/me/Downloads\n",
	}
	picker := NewNativeFolderPicker(runner, OSLinux, zerolog.Nop())

	path, ok, err := picker.PickFolder(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/home/me/Downloads", path)
	assert.Equal(t, ZenityCommand, runner.gotName)
	assert.Contains(t, runner.gotArgs, "--title="+DefaultPickerTitle)
}

func TestNativeFolderPicker_LinuxFallsBackToKdialog(t *testing.T) {
	runner := &fakeRunner{installed: map[string]bool{KdialogCommand: true}, out: "/home/me/Desktop\n"}
	picker := NewNativeFolderPicker(runner, OSLinux, zerolog.Nop())

	_, ok, err := picker.PickFolder(context.Background(), "title")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, KdialogCommand, runner.gotName)
	assert.Contains(t, runner.gotArgs, "--getexistingdirectory")
}

func TestNativeFolderPicker_Cancelled(t *testing.T) {
	runner := &fakeRunner{installed: map[string]bool{ZenityCommand: true}, err: &exec.ExitError{}}
	picker := NewNativeFolderPicker(runner, OSLinux, zerolog.Nop())

	path, ok, err := picker.PickFolder(context.Background(), "title")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestNativeFolderPicker_EmptyOutputIsCancel(t *testing.T) {
	runner := &fakeRunner{installed: map[string]bool{PowershellCommand: true}, out: "\r\n"}
	picker := NewNativeFolderPicker(runner, OSWindows, zerolog.Nop())

	_, ok, err := picker.PickFolder(context.Background(), "title")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNativeFolderPicker_StartFailure(t *testing.T) {
	runner := &fakeRunner{installed: map[string]bool{ZenityCommand: true}, err: errors.New("exec format error")}
	picker := NewNativeFolderPicker(runner, OSLinux, zerolog.Nop())

	_, ok, err := picker.PickFolder(context.Background(), "title")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "run zenity")
}

func TestNativeFolderPicker_Unavailable(t *testing.T) {
	runner := &fakeRunner{}
	picker := NewNativeFolderPicker(runner, "plan9", zerolog.Nop())
	var console bytes.Buffer
	picker.SetConsole(&console)

	assert.False(t, picker.Available())

	path, ok, err := picker.PickFolder(context.Background(), "title")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)
	assert.Equal(t, "folder picker: no dialog utility available on plan9\n", console.String())
	assert.Empty(t, runner.gotName, "no command should run")
}

func TestNativeFolderPicker_ContextCancelled(t *testing.T) {
	runner := &fakeRunner{installed: map[string]bool{ZenityCommand: true}, err: &exec.ExitError{}}
	picker := NewNativeFolderPicker(runner, OSLinux, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := picker.PickFolder(ctx, "title")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
