package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingLogger captures mirrored log calls.
type recordingLogger struct {
	debugs []string
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.debugs = append(l.debugs, msg) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(msg string, args ...any) { l.errors = append(l.errors, msg) }

func TestConsoleOutputMirrorsToLogger(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Error("something", "failed")
	Warning("heads up")
	Info("plain info")
	Success("all done")
	Debug("details")

	assert.Equal(t, []string{"something failed"}, rec.errors)
	assert.Equal(t, []string{"heads up"}, rec.warns)
	assert.Equal(t, []string{"plain info", "all done"}, rec.infos)
	assert.Equal(t, []string{"details"}, rec.debugs)
}

func TestDebugMirrorsEvenWhenConsoleDebugDisabled(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	SetDebug(false)
	Debug("quiet but logged")

	assert.Equal(t, []string{"quiet but logged"}, rec.debugs)
}
