package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	fetch  func(ctx context.Context, id string) (*StoredArticle, error)
	submit func(ctx context.Context, sub *Submission) error
	subs   []*Submission
}

func (f *fakeStore) Fetch(ctx context.Context, id string) (*StoredArticle, error) {
	if f.fetch == nil {
		return nil, errors.New("no fetch configured")
	}
	return f.fetch(ctx, id)
}

func (f *fakeStore) Submit(ctx context.Context, sub *Submission) error {
	f.subs = append(f.subs, sub)
	if f.submit == nil {
		return nil
	}
	return f.submit(ctx, sub)
}

func TestOpenNewDraftDefaults(t *testing.T) {
	s := NewSession(&fakeStore{}, nil)
	require.NoError(t, s.Open(context.Background(), ""))

	assert.Equal(t, StatusDraft, s.Status())
	assert.Equal(t, "DM Serif Display", s.Draft().Font)
	assert.Equal(t, "#1E1E1E", s.Draft().Color)
	assert.Equal(t, 0, s.Blocks().Len())
	assert.Equal(t, DeviceDesktop, s.Device())
}

func TestOpenFetchFailureFallsBackToEmptyDraft(t *testing.T) {
	store := &fakeStore{
		fetch: func(context.Context, string) (*StoredArticle, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := NewSession(store, nil)

	err := s.Open(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))

	// The session stays usable on the default draft.
	assert.Equal(t, StatusDraft, s.Status())
	assert.Equal(t, 0, s.Blocks().Len())
	s.Blocks().Append(KindPlainText, "still editable")
	assert.Equal(t, 1, s.Blocks().Len())
}

func TestOpenHydratesStoredDraft(t *testing.T) {
	store := &fakeStore{
		fetch: func(_ context.Context, id string) (*StoredArticle, error) {
			return &StoredArticle{
				ID:         id,
				Title:      "Fresh Voices",
				Author:     "Nonso",
				Date:       "2024-09-22",
				Font:       "Lora",
				Color:      "#0066FF",
				CoverImage: "1_optimized_.png",
				Status:     StatusPublished,
				Blocks: `[
					{"id":"b1","type":"hero-quote","content":"We are the story."},
					{"id":"b2","type":"two-column","content":"{broken"},
					{"id":"b3","type":"interview","content":"[{\"id\":\"q1\",\"question\":\"Why?\",\"answer\":\"Stories.\"}]"}
				]`,
			}, nil
		},
	}
	s := NewSession(store, nil)
	require.NoError(t, s.Open(context.Background(), "7"))

	d := s.Draft()
	assert.Equal(t, "7", d.ID)
	assert.Equal(t, "Fresh Voices", d.Title)
	assert.Equal(t, "Lora", d.Font)
	assert.Equal(t, "1_optimized_.png", d.CoverName)
	assert.Equal(t, StatusPublished, s.Status())

	// The malformed block is reported and skipped; the rest load.
	require.Len(t, s.LoadErrors(), 1)
	assert.True(t, errors.Is(s.LoadErrors()[0], ErrMalformedBlockPayload))
	assert.Equal(t, []string{"b1", "b3"}, blockIDs(s.Blocks()))
}

func TestPublishSubmitsBlocksInListOrder(t *testing.T) {
	store := &fakeStore{}
	s := NewSession(store, nil)
	require.NoError(t, s.Open(context.Background(), ""))

	x := s.Blocks().Append(KindPlainText, "X")
	y := s.Blocks().Append(KindPlainText, "Y")
	z := s.Blocks().Append(KindPlainText, "Z")
	s.Blocks().Move(y.ID, Up)

	s.Draft().Title = "Ordered"
	require.NoError(t, s.Publish(context.Background()))

	require.Len(t, store.subs, 1)
	sub := store.subs[0]
	assert.Equal(t, StatusPublished, sub.Status)
	assert.Equal(t, "Ordered", sub.Title)

	require.Len(t, sub.Blocks, 3)
	assert.Equal(t, []string{y.ID, x.ID, z.ID}, []string{sub.Blocks[0].ID, sub.Blocks[1].ID, sub.Blocks[2].ID})

	assert.Equal(t, StatusPublished, s.Status())
	assert.Equal(t, "/magazine", s.Redirect())
}

func TestSaveAlwaysIncludesBlocks(t *testing.T) {
	store := &fakeStore{}
	s := NewSession(store, nil)
	require.NoError(t, s.Open(context.Background(), ""))

	require.NoError(t, s.Save(context.Background()))

	require.Len(t, store.subs, 1)
	assert.Equal(t, StatusDraft, store.subs[0].Status)
	assert.NotNil(t, store.subs[0].Blocks)
	assert.Empty(t, store.subs[0].Blocks)
}

func TestSaveKeepsPublishedStatus(t *testing.T) {
	store := &fakeStore{
		fetch: func(context.Context, string) (*StoredArticle, error) {
			return &StoredArticle{ID: "1", Status: StatusPublished}, nil
		},
	}
	s := NewSession(store, nil)
	require.NoError(t, s.Open(context.Background(), "1"))

	require.NoError(t, s.Save(context.Background()))
	require.Len(t, store.subs, 1)
	assert.Equal(t, StatusPublished, store.subs[0].Status)
}

func TestFailedPublishKeepsDraftIntact(t *testing.T) {
	store := &fakeStore{
		submit: func(context.Context, *Submission) error { return errors.New("boom") },
	}
	s := NewSession(store, nil)
	require.NoError(t, s.Open(context.Background(), ""))
	s.Draft().Title = "Unsaved"
	s.Blocks().Append(KindHeroQuote, "keep me")

	err := s.Publish(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSaveFailed))

	assert.Equal(t, StatusDraft, s.Status())
	assert.Empty(t, s.Redirect())
	assert.Equal(t, "Unsaved", s.Draft().Title)
	assert.Equal(t, 1, s.Blocks().Len())
	assert.False(t, s.InFlight())
}

func TestCoverLifecycle(t *testing.T) {
	store := &fakeStore{}
	s := NewSession(store, nil)
	require.NoError(t, s.Open(context.Background(), ""))

	s.SetCover(FileAttachment{Name: "cover.png", Content: []byte{1, 2}}, "blob:preview")
	assert.Equal(t, "blob:preview", s.CoverPreview())

	require.NoError(t, s.Save(context.Background()))
	require.Len(t, store.subs, 1)
	require.NotNil(t, store.subs[0].Cover)
	assert.Equal(t, "cover.png", store.subs[0].Cover.Name)

	s.RemoveCover()
	assert.Empty(t, s.CoverPreview())

	require.NoError(t, s.Save(context.Background()))
	assert.Nil(t, store.subs[1].Cover)
}

func TestDeviceModeIsPresentationalOnly(t *testing.T) {
	s := NewSession(&fakeStore{}, nil)
	require.NoError(t, s.Open(context.Background(), ""))
	s.Blocks().Append(KindPlainText, "text")

	s.SetDevice(DeviceMobile)
	assert.Equal(t, DeviceMobile, s.Device())
	assert.Equal(t, 384, s.Device().MaxWidth())
	assert.Equal(t, 0, DeviceDesktop.MaxWidth())

	// Switching preview widths never touches the model.
	assert.Equal(t, 1, s.Blocks().Len())
}
