package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLogEvictsOldest(t *testing.T) {
	l := NewMessageLog(3)
	for i := 0; i < 5; i++ {
		l.Add(fmt.Sprintf("msg %d", i), MsgInfo)
	}
	require.Len(t, l.Messages, 3)
	assert.Equal(t, "msg 2", l.Messages[0].Text)
	assert.Equal(t, "msg 4", l.Messages[2].Text)
}

func TestMessageLogWrapsLongLines(t *testing.T) {
	l := NewMessageLog(10)
	l.Add("a bulkhead shears loose across the hull and the whole frame rings like a bell", MsgWarning)

	require.Greater(t, len(l.Messages), 1)
	for _, m := range l.Messages {
		assert.LessOrEqual(t, len(m.Text), logWrapWidth)
		assert.Equal(t, MsgWarning, m.Priority)
	}
}

func TestRecentClampsToLogLength(t *testing.T) {
	l := NewMessageLog(10)
	l.Add("one", MsgInfo)
	l.Add("two", MsgInfo)

	assert.Len(t, l.Recent(5), 2)
	assert.Equal(t, "two", l.Recent(1)[0].Text)
}
