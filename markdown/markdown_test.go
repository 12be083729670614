package markdown

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/iw2rmb/scribe/document"
)

type shape struct {
	Type   document.BlockType
	Text   string
	Depth  int
	Styles []document.StyleRange
}

func shapes(c *document.Content) []shape {
	var out []shape
	for _, b := range c.Blocks() {
		out = append(out, shape{Type: b.Type, Text: b.Text, Depth: b.Depth, Styles: b.Styles})
	}
	return out
}

func seqKeys() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("k%d", n)
	}
}

func TestImport_HeadingAndBold(t *testing.T) {
	c, err := Import([]byte("# a\n\n**b**\n"), seqKeys())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := []shape{
		{Type: document.HeaderOne, Text: "a"},
		{Type: document.Unstyled, Text: "b", Styles: []document.StyleRange{{Offset: 0, Length: 1, Style: document.Bold}}},
	}
	if got := shapes(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("import:\n got: %+v\nwant: %+v", got, want)
	}
	if b, _ := c.BlockAt(0); b.Key != "k1" {
		t.Fatalf("key=%q, want k1", b.Key)
	}
}

func TestImport_Structure(t *testing.T) {
	src := strings.Join([]string{
		"## Title",
		"",
		"> quoted *text*",
		"",
		"- one",
		"  - nested",
		"- two",
		"",
		"1. first",
		"2. second",
		"",
		"```go",
		"x := 1",
		"y := 2",
		"```",
		"",
		"soft",
		"break ~~gone~~ `code`",
	}, "\n")
	c, err := Import([]byte(src), seqKeys())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := []shape{
		{Type: document.HeaderTwo, Text: "Title"},
		{Type: document.Blockquote, Text: "quoted text", Styles: []document.StyleRange{{Offset: 7, Length: 4, Style: document.Italic}}},
		{Type: document.UnorderedListItem, Text: "one"},
		{Type: document.UnorderedListItem, Text: "nested", Depth: 1},
		{Type: document.UnorderedListItem, Text: "two"},
		{Type: document.OrderedListItem, Text: "first"},
		{Type: document.OrderedListItem, Text: "second"},
		{Type: document.CodeBlock, Text: "x := 1"},
		{Type: document.CodeBlock, Text: "y := 2"},
		{Type: document.Unstyled, Text: "soft break gone code", Styles: []document.StyleRange{
			{Offset: 16, Length: 4, Style: document.Code},
			{Offset: 11, Length: 4, Style: document.Strikethrough},
		}},
	}
	got := shapes(c)
	if len(got) != len(want) {
		t.Fatalf("blocks=%d, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Fatalf("block %d:\n got: %+v\nwant: %+v", i, got[i], want[i])
		}
	}
}

func TestImport_EmptySource(t *testing.T) {
	c, err := Import(nil, seqKeys())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if c.Len() != 1 || c.HasText() {
		t.Fatalf("expected a single empty block, got %+v", shapes(c))
	}
}

func TestExport(t *testing.T) {
	c, err := document.NewContent([]document.Block{
		{Key: "a", Type: document.HeaderOne, Text: "Title"},
		{Key: "b", Text: "plain bold", Styles: []document.StyleRange{{Offset: 6, Length: 4, Style: document.Bold}}},
		{Key: "c", Type: document.UnorderedListItem, Text: "x"},
		{Key: "d", Type: document.OrderedListItem, Text: "y", Depth: 1},
		{Key: "e", Type: document.OrderedListItem, Text: "z", Depth: 1},
		{Key: "f", Text: "under red", Styles: []document.StyleRange{
			{Offset: 0, Length: 5, Style: document.Underline},
			{Offset: 6, Length: 3, Style: document.ColorRed},
		}},
	})
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	want := "# Title\n\nplain **bold**\n\n- x\n  1. y\n  2. z\n\nunder red\n"
	if got := string(Export(c)); got != want {
		t.Fatalf("export:\n got: %q\nwant: %q", got, want)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	blocks := []document.Block{
		{Key: "1", Type: document.HeaderTwo, Text: "Notes"},
		{Key: "2", Text: "plain bold italic", Styles: []document.StyleRange{
			{Offset: 6, Length: 4, Style: document.Bold},
			{Offset: 11, Length: 6, Style: document.Italic},
		}},
		{Key: "3", Text: "a*b_c [x] `tick`"},
		{Key: "4", Text: "code and strike", Styles: []document.StyleRange{
			{Offset: 0, Length: 4, Style: document.Code},
			{Offset: 9, Length: 6, Style: document.Strikethrough},
		}},
		{Key: "5", Type: document.Blockquote, Text: "quoted"},
		{Key: "6", Type: document.UnorderedListItem, Text: "one"},
		{Key: "7", Type: document.UnorderedListItem, Text: "two", Depth: 1},
		{Key: "8", Type: document.OrderedListItem, Text: "first"},
		{Key: "9", Type: document.OrderedListItem, Text: "second"},
		{Key: "10", Type: document.CodeBlock, Text: "x := 1"},
		{Key: "11", Type: document.CodeBlock, Text: "  y := \"```\""},
		{Key: "12", Text: "# not a heading"},
		{Key: "13", Text: "1. not a list"},
		{Key: "14", Text: "- not an item"},
	}
	c, err := document.NewContent(blocks)
	if err != nil {
		t.Fatalf("content: %v", err)
	}

	md := Export(c)
	back, err := Import(md, seqKeys())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	got, want := shapes(back), shapes(c)
	if len(got) != len(want) {
		t.Fatalf("round trip through\n%s\nblocks=%d, want %d: %+v", md, len(got), len(want), got)
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Fatalf("round trip through\n%s\nblock %d:\n got: %+v\nwant: %+v", md, i, got[i], want[i])
		}
	}
}
