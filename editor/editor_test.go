package editor

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/iw2rmb/scribe/document"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

// blocks builds content with keys b0, b1, ... holding texts.
func blocks(t *testing.T, texts ...string) *document.Content {
	t.Helper()
	bs := make([]document.Block, 0, len(texts))
	for i, text := range texts {
		bs = append(bs, document.NewBlock(fmt.Sprintf("b%d", i), text))
	}
	c, err := document.NewContent(bs)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	return c
}

func seqKeys() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

func plain(m Model) string { return m.State().Content().PlainText() }

func caret(m Model) document.Selection { return m.State().Selection() }
