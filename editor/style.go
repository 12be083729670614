package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/document"
)

// Style controls the editor's rendering.
//
// Block and Inline styles are layered over Text: the block style first, then
// each inline style of a character in name order. Unset properties fall
// through to the layer below.
type Style struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style

	// Prefix styles list bullets, numbers, and quote bars.
	Prefix lipgloss.Style
	// BlockLabel styles the block type label shown with ShowBlockTypes.
	BlockLabel lipgloss.Style

	Block  map[document.BlockType]lipgloss.Style
	Inline map[document.InlineStyle]lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	return Style{
		Text:        lipgloss.NewStyle(),
		Placeholder: muted,
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Prefix:      muted,
		BlockLabel:  muted,
		Block: map[document.BlockType]lipgloss.Style{
			document.HeaderOne:   heading.Underline(true),
			document.HeaderTwo:   heading,
			document.HeaderThree: heading,
			document.HeaderFour:  lipgloss.NewStyle().Bold(true),
			document.HeaderFive:  lipgloss.NewStyle().Bold(true),
			document.HeaderSix:   lipgloss.NewStyle().Bold(true),
			document.Blockquote:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
			document.CodeBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		},
		Inline: map[document.InlineStyle]lipgloss.Style{
			document.Bold:          lipgloss.NewStyle().Bold(true),
			document.Italic:        lipgloss.NewStyle().Italic(true),
			document.Underline:     lipgloss.NewStyle().Underline(true),
			document.Strikethrough: lipgloss.NewStyle().Strikethrough(true),
			document.Code:          lipgloss.NewStyle().Foreground(lipgloss.Color("180")).Background(lipgloss.Color("236")),
			document.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
	}
}
