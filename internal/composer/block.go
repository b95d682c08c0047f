// Package composer implements the block-based article composer: the typed
// block union, payload codecs, the ordered block list model, the editor
// projection, and the session that assembles and submits an article draft.
package composer

// Kind identifies the content variant a block carries.
type Kind string

const (
	KindPlainText   Kind = "plain-text"
	KindHeroQuote   Kind = "hero-quote"
	KindTwoColumn   Kind = "two-column"
	KindDoubleImage Kind = "double-image"
	KindInterview   Kind = "interview"
)

// Known reports whether k is one of the built-in block kinds. An unknown
// kind is still carried verbatim and edited through the fallback editor.
func (k Kind) Known() bool {
	switch k {
	case KindPlainText, KindHeroQuote, KindTwoColumn, KindDoubleImage, KindInterview:
		return true
	}
	return false
}

// Payload is the decoded, type-specific content of a block. Exactly one of
// Text, Pair, or QAList implements it.
type Payload interface {
	isPayload()
}

// Text is the payload of plain-text and hero-quote blocks, and of blocks
// with an unrecognized kind.
type Text string

func (Text) isPayload() {}

// Pair is the payload of two-column and double-image blocks. For
// double-image each side holds an image location (an upload name or a
// directly usable URL); the composer never distinguishes the two.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

func (Pair) isPayload() {}

// QAEntry is one question/answer row of an interview block. Entries carry
// their own stable ids, independent of the owning block.
type QAEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QAList is the payload of an interview block, order preserved.
type QAList []QAEntry

func (QAList) isPayload() {}

// Block is one unit of article content. The payload is held decoded; the
// string encoding exists only at the wire/storage boundary.
type Block struct {
	ID      string
	Kind    Kind
	Payload Payload
}

// WireBlock is the stored form of a block: the payload re-encoded to its
// per-kind string representation.
type WireBlock struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ZeroPayload returns the decoded zero value for a kind: an empty string,
// an empty pair, or an empty QA sequence.
func ZeroPayload(kind Kind) Payload {
	switch kind {
	case KindTwoColumn, KindDoubleImage:
		return Pair{}
	case KindInterview:
		return QAList{}
	default:
		return Text("")
	}
}
