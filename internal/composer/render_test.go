package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBlockEditors(t *testing.T) {
	cases := []struct {
		name   string
		block  Block
		editor Editor
	}{
		{"hero quote", Block{ID: "1", Kind: KindHeroQuote, Payload: Text("q")}, EditorTextarea},
		{"plain text", Block{ID: "2", Kind: KindPlainText, Payload: Text("t")}, EditorTextarea},
		{"two column", Block{ID: "3", Kind: KindTwoColumn, Payload: Pair{Left: "l"}}, EditorSplit},
		{"double image", Block{ID: "4", Kind: KindDoubleImage, Payload: Pair{}}, EditorImagePair},
		{"interview", Block{ID: "5", Kind: KindInterview, Payload: QAList{}}, EditorQA},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := RenderBlock(tc.block)
			assert.Equal(t, tc.editor, v.Editor)
			assert.Equal(t, tc.block.ID, v.ID)
			assert.Equal(t, tc.block.Kind, v.Kind)
		})
	}
}

func TestRenderBlockUnknownKindFallsBack(t *testing.T) {
	v := RenderBlock(Block{ID: "x", Kind: Kind("sidebar-note"), Payload: Text("hi")})
	assert.Equal(t, EditorTextarea, v.Editor)
	assert.Equal(t, "hi", v.Text)
	assert.Equal(t, "Write your sidebar-note content...", v.Placeholder)
}

func TestRenderBlockProjectsPayload(t *testing.T) {
	v := RenderBlock(Block{ID: "p", Kind: KindTwoColumn, Payload: Pair{Left: "A", Right: "B"}})
	assert.Equal(t, "A", v.Left)
	assert.Equal(t, "B", v.Right)

	qa := QAList{{ID: "q1", Question: "Q", Answer: "A"}}
	v = RenderBlock(Block{ID: "i", Kind: KindInterview, Payload: qa})
	assert.Equal(t, []QAEntry(qa), v.Entries)
}

func TestTwoColumnSideEdits(t *testing.T) {
	// Scenario: append two-column with no initial content, then edit each
	// side independently; the merges compose into the full pair.
	l := NewList()
	b := l.Append(KindTwoColumn, "")

	cur, _ := l.Find(b.ID)
	l.UpdateContent(b.ID, MergeSide(cur.Payload.(Pair), SideLeft, "A"))
	cur, _ = l.Find(b.ID)
	l.UpdateContent(b.ID, MergeSide(cur.Payload.(Pair), SideRight, "B"))

	got, ok := l.Find(b.ID)
	require.True(t, ok)
	assert.Equal(t, Pair{Left: "A", Right: "B"}, got.Payload)
}

func TestInterviewEntryEdits(t *testing.T) {
	// Scenario: append an interview block, add two entries, edit the first
	// entry's question; the second stays empty.
	l := NewList()
	b := l.Append(KindInterview, "")

	cur, _ := l.Find(b.ID)
	qa := AppendEntry(cur.Payload.(QAList))
	qa = AppendEntry(qa)
	require.Len(t, qa, 2)
	assert.NotEqual(t, qa[0].ID, qa[1].ID)

	qa = SetEntryField(qa, qa[0].ID, FieldQuestion, "Q1")
	l.UpdateContent(b.ID, qa)

	got, _ := l.Find(b.ID)
	entries := got.Payload.(QAList)
	require.Len(t, entries, 2)
	assert.Equal(t, "Q1", entries[0].Question)
	assert.Empty(t, entries[0].Answer)
	assert.Empty(t, entries[1].Question)
	assert.Empty(t, entries[1].Answer)
}

func TestSetEntryFieldUnknownIDUnchanged(t *testing.T) {
	qa := QAList{{ID: "q1", Question: "Q", Answer: "A"}}
	got := SetEntryField(qa, "nope", FieldAnswer, "new")
	assert.Equal(t, qa, got)
}

func TestMergeHelpersDoNotMutateInput(t *testing.T) {
	orig := QAList{{ID: "q1", Question: "Q", Answer: "A"}}
	_ = AppendEntry(orig)
	_ = SetEntryField(orig, "q1", FieldAnswer, "changed")
	assert.Equal(t, QAList{{ID: "q1", Question: "Q", Answer: "A"}}, orig)
}
