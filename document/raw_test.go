package document

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestRaw_RoundTrip(t *testing.T) {
	c := mustContent(t,
		Block{Key: "h1", Type: HeaderOne, Text: "Title"},
		Block{
			Key:  "p1",
			Text: "bold and red",
			Styles: []StyleRange{
				{Offset: 0, Length: 4, Style: Bold},
				{Offset: 9, Length: 3, Style: ColorRed},
			},
		},
		Block{Key: "q1", Type: Blockquote, Text: "", Depth: 1},
	)

	data, err := MarshalRaw(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalRaw(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(c) {
		t.Fatalf("round trip mismatch:\n got: %+v\nwant: %+v", got.Blocks(), c.Blocks())
	}
}

func TestRaw_Shape(t *testing.T) {
	c := mustContent(t, Block{Key: "k", Text: "ab", Styles: []StyleRange{{Offset: 1, Length: 1, Style: Underline}}})
	data, err := MarshalRaw(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if _, ok := generic["entityMap"]; !ok {
		t.Fatalf("missing entityMap in %s", data)
	}
	blocks, ok := generic["blocks"].([]any)
	if !ok || len(blocks) != 1 {
		t.Fatalf("blocks=%v", generic["blocks"])
	}
	block := blocks[0].(map[string]any)
	for _, field := range []string{"key", "text", "type", "depth", "inlineStyleRanges", "entityRanges", "data"} {
		if _, ok := block[field]; !ok {
			t.Fatalf("block missing %q: %s", field, data)
		}
	}
	if !strings.Contains(string(data), `"style":"UNDERLINE"`) {
		t.Fatalf("style not encoded: %s", data)
	}
}

func TestFromRaw_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  RawContent
		want error
	}{
		{name: "no blocks", raw: RawContent{}, want: ErrInvalidRaw},
		{name: "empty key", raw: RawContent{Blocks: []RawBlock{{Text: "x"}}}, want: ErrInvalidRaw},
		{
			name: "duplicate",
			raw:  RawContent{Blocks: []RawBlock{{Key: "a"}, {Key: "a"}}},
			want: ErrDuplicateKey,
		},
		{
			name: "duplicate is invalid raw",
			raw:  RawContent{Blocks: []RawBlock{{Key: "a"}, {Key: "a"}}},
			want: ErrInvalidRaw,
		},
		{
			name: "range past end",
			raw: RawContent{Blocks: []RawBlock{{
				Key:               "a",
				Text:              "ab",
				InlineStyleRanges: []RawStyleRange{{Offset: 1, Length: 5, Style: Bold}},
			}}},
			want: ErrInvalidRaw,
		},
		{
			name: "length overflows offset",
			raw: RawContent{Blocks: []RawBlock{{
				Key:               "a",
				Text:              "abc",
				InlineStyleRanges: []RawStyleRange{{Offset: 1, Length: math.MaxInt, Style: Bold}},
			}}},
			want: ErrInvalidRaw,
		},
		{
			name: "offset past end",
			raw: RawContent{Blocks: []RawBlock{{
				Key:               "a",
				Text:              "abc",
				InlineStyleRanges: []RawStyleRange{{Offset: 4, Length: 0, Style: Bold}},
			}}},
			want: ErrInvalidRaw,
		},
		{
			name: "negative offset",
			raw: RawContent{Blocks: []RawBlock{{
				Key:               "a",
				Text:              "ab",
				InlineStyleRanges: []RawStyleRange{{Offset: -1, Length: 1, Style: Bold}},
			}}},
			want: ErrInvalidRaw,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromRaw(tc.raw); !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestUnmarshalRaw_Malformed(t *testing.T) {
	if _, err := UnmarshalRaw([]byte("{not json")); !errors.Is(err, ErrInvalidRaw) {
		t.Fatalf("err=%v, want ErrInvalidRaw", err)
	}
}

func TestFromRaw_DefaultsMissingType(t *testing.T) {
	c, err := FromRaw(RawContent{Blocks: []RawBlock{{Key: "a", Text: "x"}}})
	if err != nil {
		t.Fatalf("from raw: %v", err)
	}
	b, _ := c.Block("a")
	if b.Type != Unstyled {
		t.Fatalf("type=%q, want %q", b.Type, Unstyled)
	}
}
