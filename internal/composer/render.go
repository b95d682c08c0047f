package composer

import (
	"fmt"

	"github.com/google/uuid"
)

// Editor identifies which visual editor a block is projected into.
type Editor string

const (
	// EditorTextarea is a single multi-line text field; edits replace the
	// whole string.
	EditorTextarea Editor = "textarea"
	// EditorSplit is two independent left/right fields; edits address one
	// side and are merged by the caller.
	EditorSplit Editor = "split"
	// EditorImagePair is EditorSplit with image pickers instead of text.
	EditorImagePair Editor = "image-pair"
	// EditorQA is a variable-length question/answer row list with an
	// append affordance.
	EditorQA Editor = "qa"
)

// Side addresses one field of a split editor.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// QAField addresses one field of a QA entry.
type QAField string

const (
	FieldQuestion QAField = "question"
	FieldAnswer   QAField = "answer"
)

// View is the editable projection of one block. The renderer holds no
// state of its own: it is a pure function of the block it is given, and
// edits flow back as fresh payloads built by the merge helpers below.
type View struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Editor      Editor    `json:"editor"`
	Text        string    `json:"text,omitempty"`
	Left        string    `json:"left,omitempty"`
	Right       string    `json:"right,omitempty"`
	Entries     []QAEntry `json:"entries,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// RenderBlock projects a block into its editor descriptor. The switch is
// exhaustive over the known kinds; anything else gets the fallback textarea
// with a kind-specific placeholder.
func RenderBlock(b Block) View {
	switch b.Kind {
	case KindHeroQuote:
		return View{ID: b.ID, Kind: b.Kind, Editor: EditorTextarea, Text: text(b.Payload), Placeholder: "Write your quote..."}
	case KindPlainText:
		return View{ID: b.ID, Kind: b.Kind, Editor: EditorTextarea, Text: text(b.Payload), Placeholder: "Write your text..."}
	case KindTwoColumn:
		p := pair(b.Payload)
		return View{ID: b.ID, Kind: b.Kind, Editor: EditorSplit, Left: p.Left, Right: p.Right}
	case KindDoubleImage:
		p := pair(b.Payload)
		return View{ID: b.ID, Kind: b.Kind, Editor: EditorImagePair, Left: p.Left, Right: p.Right}
	case KindInterview:
		return View{ID: b.ID, Kind: b.Kind, Editor: EditorQA, Entries: qaList(b.Payload)}
	default:
		return View{
			ID: b.ID, Kind: b.Kind, Editor: EditorTextarea,
			Text:        text(b.Payload),
			Placeholder: fmt.Sprintf("Write your %s content...", b.Kind),
		}
	}
}

// ReplaceText builds the full-replacement payload of a textarea edit.
func ReplaceText(value string) Payload { return Text(value) }

// MergeSide merges one side's new value into an existing pair. The editor
// never holds the full payload; it only names the side it changed.
func MergeSide(p Pair, side Side, value string) Pair {
	if side == SideRight {
		p.Right = value
	} else {
		p.Left = value
	}
	return p
}

// AppendEntry returns the list with a new QA entry appended, carrying a
// fresh id and empty question/answer.
func AppendEntry(list QAList) QAList {
	out := make(QAList, len(list), len(list)+1)
	copy(out, list)
	return append(out, QAEntry{ID: newEntryID()})
}

// SetEntryField merges one field edit into the entry matching entryID. An
// unknown entry id leaves the list unchanged.
func SetEntryField(list QAList, entryID string, field QAField, value string) QAList {
	out := make(QAList, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID != entryID {
			continue
		}
		if field == FieldAnswer {
			out[i].Answer = value
		} else {
			out[i].Question = value
		}
		break
	}
	return out
}

func newEntryID() string { return uuid.New().String() }

func text(p Payload) string {
	if t, ok := p.(Text); ok {
		return string(t)
	}
	return ""
}

func pair(p Payload) Pair {
	if pr, ok := p.(Pair); ok {
		return pr
	}
	return Pair{}
}

func qaList(p Payload) QAList {
	if qa, ok := p.(QAList); ok {
		return qa
	}
	return QAList{}
}
