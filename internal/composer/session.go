package composer

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Status is the lifecycle state of an article draft. The only transition is
// draft → published; a published article never reverts.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// DeviceMode selects the presentational preview width. It has no effect on
// the data model.
type DeviceMode string

const (
	DeviceDesktop DeviceMode = "desktop"
	DeviceTablet  DeviceMode = "tablet"
	DeviceMobile  DeviceMode = "mobile"
)

// MaxWidth returns the preview width in pixels, 0 meaning full width.
func (m DeviceMode) MaxWidth() int {
	switch m {
	case DeviceTablet:
		return 672
	case DeviceMobile:
		return 384
	default:
		return 0
	}
}

// FileAttachment is an opaque binary held client-side until submission. The
// composer never inspects its contents.
type FileAttachment struct {
	Name    string
	Content []byte
}

// Draft is the metadata of the article being composed.
type Draft struct {
	ID        string
	Title     string
	Author    string
	Date      string
	Font      string
	Color     string
	CoverName string // persisted cover filename from a previous save
}

// StoredArticle is the draft as returned by the article storage
// collaborator. Blocks is the JSON-encoded wire array, deserialized lazily
// per block on hydration.
type StoredArticle struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Date       string `json:"date"`
	Font       string `json:"font"`
	Color      string `json:"color"`
	CoverImage string `json:"coverImage"`
	Blocks     string `json:"blocks"`
	Status     Status `json:"status"`
}

// Submission is one save/publish payload. Blocks is always included so the
// article body is never silently dropped on save.
type Submission struct {
	ID     string
	Title  string
	Author string
	Date   string
	Font   string
	Color  string
	Status Status
	Blocks []WireBlock
	Cover  *FileAttachment
	PDF    *FileAttachment
}

// Store is the article storage collaborator at its interface boundary.
type Store interface {
	Fetch(ctx context.Context, id string) (*StoredArticle, error)
	Submit(ctx context.Context, sub *Submission) error
}

const (
	defaultFont  = "DM Serif Display"
	defaultColor = "#1E1E1E"
)

// Session is one open composer: it exclusively owns the draft and its block
// list, and is the only writer of the article's lifecycle status. All
// operations are synchronous; the only suspension points are Open and the
// submit path.
type Session struct {
	store Store
	log   *zap.Logger

	draft  Draft
	status Status
	blocks *List

	cover        *FileAttachment
	coverPreview string
	pdf          *FileAttachment

	device   DeviceMode
	loadErrs []error
	inFlight bool
	redirect string
}

// NewSession creates a session with an empty default draft.
func NewSession(store Store, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{store: store, log: log, device: DeviceDesktop}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.draft = Draft{Font: defaultFont, Color: defaultColor}
	s.status = StatusDraft
	s.blocks = NewList()
	s.cover = nil
	s.coverPreview = ""
	s.pdf = nil
	s.loadErrs = nil
	s.redirect = ""
}

// Open hydrates the session from a persisted article, or starts a fresh
// draft when id is empty. A failed fetch is non-blocking: the session falls
// back to the empty default draft and the error is returned for display.
func (s *Session) Open(ctx context.Context, id string) error {
	s.reset()
	if id == "" {
		return nil
	}

	stored, err := s.store.Fetch(ctx, id)
	if err != nil {
		s.log.Warn("draft fetch failed, starting empty", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	s.draft = Draft{
		ID:        stored.ID,
		Title:     stored.Title,
		Author:    stored.Author,
		Date:      stored.Date,
		Font:      stored.Font,
		Color:     stored.Color,
		CoverName: stored.CoverImage,
	}
	if s.draft.Font == "" {
		s.draft.Font = defaultFont
	}
	if s.draft.Color == "" {
		s.draft.Color = defaultColor
	}
	if stored.Status == StatusPublished {
		s.status = StatusPublished
	}

	s.blocks, s.loadErrs = hydrateBlocks(stored.Blocks)
	for _, lerr := range s.loadErrs {
		s.log.Warn("block skipped on load", zap.String("article", id), zap.Error(lerr))
	}
	return nil
}

// hydrateBlocks parses the stored block field and decodes each block,
// isolating per-block failures.
func hydrateBlocks(raw string) (*List, []error) {
	if raw == "" {
		return NewList(), nil
	}
	var wire []WireBlock
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return NewList(), []error{fmt.Errorf("%w: block sequence: %v", ErrMalformedBlockPayload, err)}
	}
	return FromWire(wire)
}

// Draft returns the mutable draft metadata.
func (s *Session) Draft() *Draft { return &s.draft }

// Blocks returns the block list model owned by this session.
func (s *Session) Blocks() *List { return s.blocks }

// Status returns the draft's lifecycle state.
func (s *Session) Status() Status { return s.status }

// LoadErrors reports the blocks that could not be decoded on Open.
func (s *Session) LoadErrors() []error { return s.loadErrs }

// SetDevice switches the preview mode.
func (s *Session) SetDevice(m DeviceMode) { s.device = m }

// Device returns the current preview mode.
func (s *Session) Device() DeviceMode { return s.device }

// SetCover holds a newly selected cover image and its displayable preview
// source until the next submission.
func (s *Session) SetCover(att FileAttachment, previewURL string) {
	s.cover = &att
	s.coverPreview = previewURL
}

// RemoveCover discards the held cover image; its preview is invalidated
// immediately.
func (s *Session) RemoveCover() {
	s.cover = nil
	s.coverPreview = ""
	s.draft.CoverName = ""
}

// CoverPreview returns the displayable cover source, empty when no cover is
// held.
func (s *Session) CoverPreview() string { return s.coverPreview }

// AttachPDF holds a document to upload with the next submission.
func (s *Session) AttachPDF(att FileAttachment) { s.pdf = &att }

// Save submits the draft with its current lifecycle status.
func (s *Session) Save(ctx context.Context) error {
	return s.submit(ctx, s.status)
}

// Publish submits with published status. On success the status transition
// is committed and Redirect reports the published listing; on failure the
// draft stays untouched and retryable.
func (s *Session) Publish(ctx context.Context) error {
	if err := s.submit(ctx, StatusPublished); err != nil {
		return err
	}
	s.status = StatusPublished
	s.redirect = "/magazine"
	return nil
}

// Redirect returns where the shell should navigate after a successful
// publish, empty otherwise.
func (s *Session) Redirect() string { return s.redirect }

// InFlight reports whether a submission is outstanding, so the UI can
// disable the triggering control.
func (s *Session) InFlight() bool { return s.inFlight }

func (s *Session) submit(ctx context.Context, status Status) error {
	s.inFlight = true
	defer func() { s.inFlight = false }()

	sub := &Submission{
		ID:     s.draft.ID,
		Title:  s.draft.Title,
		Author: s.draft.Author,
		Date:   s.draft.Date,
		Font:   s.draft.Font,
		Color:  s.draft.Color,
		Status: status,
		Blocks: s.blocks.Wire(),
		Cover:  s.cover,
		PDF:    s.pdf,
	}

	if err := s.store.Submit(ctx, sub); err != nil {
		s.log.Warn("submission failed", zap.String("status", string(status)), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}
