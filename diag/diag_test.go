package diag

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/participle/lexer"
)

func TestLogAccumulatesMessagesAndTracksFailure(t *testing.T) {
	log := NewLog(nil)
	assert.False(t, log.Failed())

	Infof(log, lexer.Position{}, "informational")
	assert.False(t, log.Failed())
	assert.Equal(t, 1, len(log.Messages))

	Warnf(log, HiddenMember, lexer.Position{}, "warning")
	assert.False(t, log.Failed())

	Errorf(log, SyntaxReferenceError, lexer.Position{}, "boom %d", 1)
	assert.True(t, log.Failed())
	assert.Equal(t, 3, len(log.Messages))
	assert.Equal(t, SyntaxReferenceError, log.Messages[2].Code)
	assert.Equal(t, "boom 1", log.Messages[2].Text)
}

func TestLogEchoesToWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewLog(&buf)

	Errorf(log, CircularDependency, lexer.Position{}, "cycle")
	assert.True(t, len(buf.String()) > 0)
}

func TestFatalfMarksFailedWithoutAborting(t *testing.T) {
	log := NewLog(nil)
	Fatalf(log, AbstractnessFailure, lexer.Position{}, "fatal")
	assert.True(t, log.Failed())
}
