package sapling

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

const defaultLogCap = 50

// LogPanel is an on-screen log. Newest lines appear first, under an optional
// header, and the panel keeps at most Cap lines (header included).
type LogPanel struct {
	Cap    int
	header string
	lines  []string
	node   *Node
}

// NewLogPanel creates a log panel drawn at pos. An empty header omits the
// header and its underline. Cap starts at 50 lines.
func NewLogPanel(name string, pos Vec2, header string, opts TextOptions) (*LogPanel, *Node) {
	p := &LogPanel{Cap: defaultLogCap, header: header}
	if header != "" {
		p.lines = []string{capitalize(header), "+" + strings.Repeat("-", utf8.RuneCountInString(header))}
	}
	n := NewText(name, pos, "", opts)
	n.Type = NodeTypeLogPanel
	n.TextBlock.ContentFunc = p.String
	n.UserData = p
	p.node = n
	return p, n
}

// Node returns the panel's node.
func (p *LogPanel) Node() *Node {
	return p.node
}

// Log joins args with a space and adds the result as the newest line.
// It panics when called without arguments.
func (p *LogPanel) Log(args ...string) {
	if len(args) == 0 {
		panic("sapling: LogPanel.Log needs at least one argument")
	}
	p.push(strings.Join(args, " "))
}

// Logf formats and adds a line.
func (p *LogPanel) Logf(format string, args ...any) {
	p.push(fmt.Sprintf(format, args...))
}

// Write adds each non-empty line of b, so the panel can be a log sink.
func (p *LogPanel) Write(b []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(b, "\n"), []byte{'\n'}) {
		if len(line) > 0 {
			p.push(string(line))
		}
	}
	return len(b), nil
}

// Sync implements zapcore.WriteSyncer.
func (p *LogPanel) Sync() error {
	return nil
}

// Lines returns the panel's lines, header first.
func (p *LogPanel) Lines() []string {
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

func (p *LogPanel) String() string {
	return strings.Join(p.lines, "\n")
}

func (p *LogPanel) push(line string) {
	at := 0
	if p.header != "" {
		at = 2
	}
	if at > len(p.lines) {
		at = len(p.lines)
	}
	p.lines = append(p.lines, "")
	copy(p.lines[at+1:], p.lines[at:])
	p.lines[at] = line

	limit := p.Cap
	if limit <= 0 {
		limit = defaultLogCap
	}
	if len(p.lines) > limit {
		p.lines = p.lines[:limit]
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(s[:size]) + strings.ToLower(s[size:])
}
