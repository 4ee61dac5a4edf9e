package log

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithLevel("warn"))

	l.Infof("hidden %d", 1)
	l.Debugf("hidden %d", 2)
	assert.Empty(t, buf.String())

	l.Warnf("unrecognised opcode %04X", 0x5121)
	assert.Contains(t, buf.String(), "unrecognised opcode 5121")
	assert.Contains(t, buf.String(), "level=warning")
}

func TestNew_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithLevel("loud"))

	l.Debugf("hidden")
	l.Infof("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	assert.NotPanics(t, func() {
		l.Infof("%d", 1)
		l.Warnf("%d", 2)
		l.Errorf("%d", 3)
		l.Debugf("%d", 4)
	})
}
