package shell

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/zksim/internal/config"
)

// Output tags. Every status line starts with one of these.
const (
	TagOK   = "[OK]"
	TagErr  = "[ERR]"
	TagInfo = "[INFO]"
	TagData = "[DATA]"
)

// Printer writes tagged lines. Tags are colored unless color is disabled;
// message text is never styled.
type Printer struct {
	w      io.Writer
	styles map[string]lipgloss.Style
}

// NewPrinter returns a printer writing to w. A nil theme or noColor leaves tags
// unstyled.
func NewPrinter(w io.Writer, theme *config.ThemeConfig, noColor bool) *Printer {
	p := &Printer{w: w}
	if noColor || theme == nil {
		return p
	}
	p.styles = map[string]lipgloss.Style{}
	for tag, token := range map[string]string{
		TagOK:   theme.OK,
		TagErr:  theme.Err,
		TagInfo: theme.Info,
		TagData: theme.Data,
	} {
		if strings.TrimSpace(token) == "" {
			continue
		}
		p.styles[tag] = lipgloss.NewStyle().Foreground(lipgloss.Color(token))
	}
	return p
}

func (p *Printer) tagged(tag, msg string) {
	if st, ok := p.styles[tag]; ok {
		tag = st.Render(tag)
	}
	fmt.Fprintf(p.w, "%s %s\n", tag, singleLine(msg))
}

// singleLine folds a multi-line message onto one line so no part of it is
// printed without its tag.
func singleLine(msg string) string {
	if !strings.ContainsAny(msg, "\r\n") {
		return msg
	}
	lines := strings.FieldsFunc(msg, func(r rune) bool { return r == '\n' || r == '\r' })
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}

// OK prints a success confirmation.
func (p *Printer) OK(msg string) { p.tagged(TagOK, msg) }

// Err prints an error line.
func (p *Printer) Err(msg string) { p.tagged(TagErr, msg) }

// Info prints an informational line.
func (p *Printer) Info(msg string) { p.tagged(TagInfo, msg) }

// Data prints a data payload line.
func (p *Printer) Data(msg string) { p.tagged(TagData, msg) }

// Line prints s untagged followed by a newline.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.w, s)
}

// Block prints pre-rendered multi-line text untagged, adding a final newline
// only when missing.
func (p *Printer) Block(s string) {
	if s == "" {
		return
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	fmt.Fprint(p.w, s)
}
