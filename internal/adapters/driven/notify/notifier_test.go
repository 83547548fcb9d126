package notify

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

func TestNotifier_ToastWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(WithOutput(&buf))

	n.Toast(driven.ToastSuccess, "Document processed", "invoice.pdf finished processing.")

	out := buf.String()
	assert.Contains(t, out, "Document processed")
	assert.Contains(t, out, "invoice.pdf finished processing.")
}

func TestNotifier_ToastLevels(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(WithOutput(&buf))

	n.Toast(driven.ToastSuccess, "ok", "a")
	n.Toast(driven.ToastError, "bad", "b")
	n.Toast(driven.ToastInfo, "fyi", "c")

	out := buf.String()
	assert.Contains(t, out, iconSuccess)
	assert.Contains(t, out, iconError)
	assert.Contains(t, out, iconInfo)
}

func TestNotifier_OSNotifyDisabledByDefault(t *testing.T) {
	calls := 0
	n := NewNotifier(WithOutput(&bytes.Buffer{}))
	n.runCommand = func(string, ...string) error {
		calls++
		return nil
	}

	n.OSNotify("doc-1", "Document processed", "done")
	assert.Equal(t, 0, calls)
}

func TestNotifier_OSNotifyCarriesTag(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("no desktop notifier on this platform")
	}

	var gotName string
	var gotArgs []string
	n := NewNotifier(WithOutput(&bytes.Buffer{}), WithDesktop(true))
	n.runCommand = func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	n.OSNotify("doc-1", "Document processed", "invoice.pdf finished processing.")

	require.NotEmpty(t, gotName)
	joined := ""
	for _, arg := range gotArgs {
		joined += arg + " "
	}
	if runtime.GOOS == "linux" {
		assert.Equal(t, "notify-send", gotName)
		assert.Contains(t, joined, "doc-1")
	} else {
		assert.Equal(t, "osascript", gotName)
	}
	assert.Contains(t, joined, "Document processed")
}
