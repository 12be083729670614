package document

import (
	"reflect"
	"testing"
)

func seqKeys(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + string(rune('0'+n))
	}
}

func TestEmptyState(t *testing.T) {
	s := EmptyState(Options{KeyFunc: seqKeys("k")})
	if got := s.Content().Len(); got != 1 {
		t.Fatalf("blocks=%d, want 1", got)
	}
	b, _ := s.Content().First()
	if b.Key != "k1" || b.Text != "" || b.Type != Unstyled {
		t.Fatalf("unexpected first block: %+v", b)
	}
	if got, want := s.Selection(), Caret("k1", 0); got != want {
		t.Fatalf("selection=%+v, want %+v", got, want)
	}
	if s.CanUndo() || s.CanRedo() {
		t.Fatalf("fresh state must have no history")
	}
	if _, ok := s.LastChange(); ok {
		t.Fatalf("fresh state must have no last change")
	}
}

func TestState_PushUndoRedo(t *testing.T) {
	c := mustContent(t, NewBlock("a", "ab"))
	s0 := NewState(c, Options{})

	c1, err := s0.Content().InsertText(Caret("a", 2), "c", nil)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	s1 := s0.Push(c1, InsertCharacters)
	if got, want := s1.Content().PlainText(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := s1.Selection(), Caret("a", 3); got != want {
		t.Fatalf("selection=%+v, want %+v", got, want)
	}
	if got, want := s0.Content().PlainText(), "ab"; got != want {
		t.Fatalf("old snapshot mutated: %q", got)
	}

	ch, ok := s1.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if ch.Type != InsertCharacters || ch.VersionBefore != s0.Version() || ch.VersionAfter != s0.Version()+1 {
		t.Fatalf("unexpected change: %+v", ch)
	}

	s2, ok := s1.Undo()
	if !ok {
		t.Fatalf("expected undo")
	}
	if got, want := s2.Content().PlainText(), "ab"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	if !s2.CanRedo() {
		t.Fatalf("expected redo available")
	}

	s3, ok := s2.Redo()
	if !ok {
		t.Fatalf("expected redo")
	}
	if got, want := s3.Content().PlainText(), "abc"; got != want {
		t.Fatalf("text after redo=%q, want %q", got, want)
	}
	if got := s3.LastChangeType(); got != ChangeRedo {
		t.Fatalf("last change=%q, want %q", got, ChangeRedo)
	}
}

func TestState_PushSameContentIsNoOp(t *testing.T) {
	s := NewState(mustContent(t, NewBlock("a", "x")), Options{})
	next := s.Push(s.Content(), InsertCharacters)
	if next.Version() != s.Version() || next.CanUndo() {
		t.Fatalf("expected no-op push")
	}
}

func TestState_TypingCoalescesIntoOneUndoStep(t *testing.T) {
	s := NewState(mustContent(t, NewBlock("a", "")), Options{})
	for _, ch := range []string{"a", "b", "c"} {
		c, err := s.Content().InsertText(s.Selection(), ch, nil)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		s = s.Push(c, InsertCharacters)
	}
	if got, want := s.Content().PlainText(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	c, err := s.Content().RemoveRange(s.Content().Select(Point{"a", 0}, Point{"a", 1}))
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	s = s.Push(c, RemoveRangeChange)

	s, _ = s.Undo()
	if got, want := s.Content().PlainText(), "abc"; got != want {
		t.Fatalf("text after first undo=%q, want %q", got, want)
	}
	s, _ = s.Undo()
	if got, want := s.Content().PlainText(), ""; got != want {
		t.Fatalf("text after second undo=%q, want %q", got, want)
	}
	if s.CanUndo() {
		t.Fatalf("expected history exhausted")
	}
}

func TestState_HistoryLimit(t *testing.T) {
	s := NewState(mustContent(t, NewBlock("a", "")), Options{HistoryLimit: 2})
	for _, style := range []InlineStyle{Bold, Italic, Underline} {
		c, err := s.Content().InsertText(s.Selection(), "x", []InlineStyle{style})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		s = s.Push(c, ChangeInlineStyle)
	}
	n := 0
	for s.CanUndo() {
		s, _ = s.Undo()
		n++
	}
	if n != 2 {
		t.Fatalf("undo steps=%d, want 2", n)
	}
	if got, want := s.Content().PlainText(), "x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestState_OverrideAndCurrentInlineStyle(t *testing.T) {
	c := mustContent(t, Block{Key: "a", Text: "ab", Styles: []StyleRange{{Offset: 0, Length: 1, Style: Bold}}})
	s := NewState(c, Options{}).WithSelection(Caret("a", 1))
	if got, want := s.CurrentInlineStyle(), []InlineStyle{Bold}; !reflect.DeepEqual(got, want) {
		t.Fatalf("current style=%v, want %v", got, want)
	}

	s = s.WithInlineStyleOverride([]InlineStyle{Underline})
	if got, want := s.CurrentInlineStyle(), []InlineStyle{Underline}; !reflect.DeepEqual(got, want) {
		t.Fatalf("current style=%v, want %v", got, want)
	}

	moved := s.WithSelection(Caret("a", 2))
	if _, ok := moved.InlineStyleOverride(); ok {
		t.Fatalf("override must be dropped when the caret moves")
	}

	same := s.WithSelection(Caret("a", 1))
	if _, ok := same.InlineStyleOverride(); !ok {
		t.Fatalf("override must survive a no-op selection")
	}
}

func TestState_WithSelectionClamps(t *testing.T) {
	s := NewState(mustContent(t, NewBlock("a", "ab")), Options{})
	s = s.WithSelection(Caret("a", 50))
	if got, want := s.Selection(), Caret("a", 2); got != want {
		t.Fatalf("selection=%+v, want %+v", got, want)
	}
}
