package document

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// RawContent is the plain nested-object form of a document, suitable for
// JSON persistence.
type RawContent struct {
	Blocks    []RawBlock     `json:"blocks"`
	EntityMap map[string]any `json:"entityMap"`
}

type RawBlock struct {
	Key               string          `json:"key"`
	Text              string          `json:"text"`
	Type              BlockType       `json:"type"`
	Depth             int             `json:"depth"`
	InlineStyleRanges []RawStyleRange `json:"inlineStyleRanges"`
	EntityRanges      []any           `json:"entityRanges"`
	Data              map[string]any  `json:"data"`
}

type RawStyleRange struct {
	Offset int         `json:"offset"`
	Length int         `json:"length"`
	Style  InlineStyle `json:"style"`
}

// ToRaw converts c into its raw form.
func ToRaw(c *Content) RawContent {
	raw := RawContent{
		Blocks:    make([]RawBlock, 0, c.Len()),
		EntityMap: map[string]any{},
	}
	for _, b := range c.blocks {
		rb := RawBlock{
			Key:               b.Key,
			Text:              b.Text,
			Type:              b.Type,
			Depth:             b.Depth,
			InlineStyleRanges: make([]RawStyleRange, 0, len(b.Styles)),
			EntityRanges:      []any{},
			Data:              map[string]any{},
		}
		for _, r := range b.Styles {
			rb.InlineStyleRanges = append(rb.InlineStyleRanges, RawStyleRange(r))
		}
		raw.Blocks = append(raw.Blocks, rb)
	}
	return raw
}

// FromRaw rebuilds content from raw. It rejects empty or duplicate keys and
// style ranges that fall outside their block.
func FromRaw(raw RawContent) (*Content, error) {
	blocks := make([]Block, 0, len(raw.Blocks))
	for i, rb := range raw.Blocks {
		if rb.Key == "" {
			return nil, errors.Wrapf(ErrInvalidRaw, "block %d has no key", i)
		}
		b := Block{
			Key:   rb.Key,
			Type:  rb.Type,
			Text:  rb.Text,
			Depth: rb.Depth,
		}
		n := b.Len()
		for _, r := range rb.InlineStyleRanges {
			if r.Offset < 0 || r.Length < 0 || r.Offset > n || r.Length > n-r.Offset || r.Style == "" {
				return nil, errors.Wrapf(ErrInvalidRaw, "block %q: bad style range %+v", rb.Key, r)
			}
			b.Styles = append(b.Styles, StyleRange(r))
		}
		blocks = append(blocks, b)
	}
	if len(blocks) == 0 {
		return nil, errors.Wrap(ErrInvalidRaw, "no blocks")
	}
	c, err := NewContent(blocks)
	if err != nil {
		return nil, &invalidRawError{cause: err}
	}
	return c, nil
}

// MarshalRaw encodes c as raw JSON.
func MarshalRaw(c *Content) ([]byte, error) {
	data, err := json.Marshal(ToRaw(c))
	return data, errors.Wrap(err, "failed to marshal raw content")
}

// UnmarshalRaw decodes raw JSON into content.
func UnmarshalRaw(data []byte) (*Content, error) {
	var raw RawContent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ErrInvalidRaw, err.Error())
	}
	return FromRaw(raw)
}
