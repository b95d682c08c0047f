package composer

import (
	"errors"

	"github.com/google/uuid"
)

// Direction selects the neighbor a block is swapped with.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// List is the ordered block sequence of one article draft. Order is
// positional and significant; ids are unique within the list. All
// operations are total: an unknown id or an out-of-bounds move is a no-op.
type List struct {
	blocks []Block
}

// NewList returns an empty block list.
func NewList() *List { return &List{} }

// FromWire hydrates a list from its stored form. A block whose payload does
// not decode is reported and skipped; the remaining blocks load normally.
func FromWire(wire []WireBlock) (*List, []error) {
	l := NewList()
	var errs []error
	for _, w := range wire {
		p, err := DecodePayload(Kind(w.Type), w.Content)
		if err != nil {
			var mp *MalformedPayloadError
			if errors.As(err, &mp) {
				mp.BlockID = w.ID
			}
			errs = append(errs, err)
			continue
		}
		l.blocks = append(l.blocks, Block{ID: w.ID, Kind: Kind(w.Type), Payload: p})
	}
	return l, errs
}

// Append creates a block with a freshly generated id and the given initial
// content, inserted at the end. Initial content that does not decode for
// the kind falls back to the kind's zero value; creation never fails.
func (l *List) Append(kind Kind, initial string) Block {
	p, err := DecodePayload(kind, initial)
	if err != nil {
		p = ZeroPayload(kind)
	}
	return l.AppendPayload(kind, p)
}

// AppendPayload inserts a block carrying an already-decoded payload.
func (l *List) AppendPayload(kind Kind, p Payload) Block {
	b := Block{ID: uuid.New().String(), Kind: kind, Payload: p}
	l.blocks = append(l.blocks, b)
	return b
}

// UpdateContent replaces the payload of the block matching id. Kind and
// position are untouched; an unknown id is a no-op.
func (l *List) UpdateContent(id string, p Payload) {
	for i := range l.blocks {
		if l.blocks[i].ID == id {
			l.blocks[i].Payload = p
			return
		}
	}
}

// Move swaps the block matching id with its immediate neighbor. Moving the
// first block up or the last block down leaves the list unchanged.
func (l *List) Move(id string, dir Direction) {
	idx := l.index(id)
	if idx < 0 {
		return
	}
	swap := idx - 1
	if dir == Down {
		swap = idx + 1
	}
	if swap < 0 || swap >= len(l.blocks) {
		return
	}
	l.blocks[idx], l.blocks[swap] = l.blocks[swap], l.blocks[idx]
}

// Remove deletes the block matching id; subsequent blocks shift up.
func (l *List) Remove(id string) {
	idx := l.index(id)
	if idx < 0 {
		return
	}
	l.blocks = append(l.blocks[:idx], l.blocks[idx+1:]...)
}

// Len returns the number of blocks.
func (l *List) Len() int { return len(l.blocks) }

// Blocks returns a copy of the block sequence in order.
func (l *List) Blocks() []Block {
	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Find returns the block matching id.
func (l *List) Find(id string) (Block, bool) {
	idx := l.index(id)
	if idx < 0 {
		return Block{}, false
	}
	return l.blocks[idx], true
}

// Wire renders the list to its stored form, each payload re-encoded, order
// preserved.
func (l *List) Wire() []WireBlock {
	out := make([]WireBlock, len(l.blocks))
	for i, b := range l.blocks {
		out[i] = WireBlock{ID: b.ID, Type: string(b.Kind), Content: EncodePayload(b.Payload)}
	}
	return out
}

func (l *List) index(id string) int {
	for i := range l.blocks {
		if l.blocks[i].ID == id {
			return i
		}
	}
	return -1
}
