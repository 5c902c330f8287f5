package sapling

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPanelHeader(t *testing.T) {
	p, n := NewLogPanel("log", Vec2{}, "eVENTS", TextOptions{})
	assert.Equal(t, NodeTypeLogPanel, n.Type)
	assert.Equal(t, []string{"Events", "+------"}, p.Lines())

	p.Log("first")
	p.Log("second", "entry")
	assert.Equal(t, []string{"Events", "+------", "second entry", "first"}, p.Lines())
	assert.Equal(t, "Events\n+------\nsecond entry\nfirst", n.TextBlock.String())
}

func TestLogPanelHeaderMultibyte(t *testing.T) {
	p, _ := NewLogPanel("log", Vec2{}, "éLAN", TextOptions{})
	lines := p.Lines()
	require.Len(t, lines, 2)
	assert.True(t, utf8.ValidString(lines[0]))
	assert.Equal(t, "Élan", lines[0])
	assert.Equal(t, "+----", lines[1])
}

func TestLogPanelNoHeader(t *testing.T) {
	p, _ := NewLogPanel("log", Vec2{}, "", TextOptions{})
	p.Logf("%d", 1)
	p.Logf("%d", 2)
	assert.Equal(t, []string{"2", "1"}, p.Lines())
}

func TestLogPanelCap(t *testing.T) {
	p, _ := NewLogPanel("log", Vec2{}, "h", TextOptions{})
	p.Cap = 4
	for i := range 10 {
		p.Logf("line %d", i)
	}
	assert.Equal(t, []string{"H", "+-", "line 9", "line 8"}, p.Lines())
}

func TestLogPanelLogNoArgsPanics(t *testing.T) {
	p, _ := NewLogPanel("log", Vec2{}, "", TextOptions{})
	assert.Panics(t, func() { p.Log() })
}

func TestLogPanelWrite(t *testing.T) {
	p, _ := NewLogPanel("log", Vec2{}, "", TextOptions{})
	n, err := p.Write([]byte("a\n\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []string{"b", "a"}, p.Lines())
}

func TestNewLoggerTeesIntoPanel(t *testing.T) {
	p, _ := NewLogPanel("log", Vec2{}, "", TextOptions{})
	logger, err := NewLogger("warn", p)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	lines := p.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.Contains(lines[0], "shown"), "line = %q", lines[0])
	assert.True(t, strings.Contains(lines[0], "WARN"), "line = %q", lines[0])
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger("loud")
	assert.Error(t, err)
}
