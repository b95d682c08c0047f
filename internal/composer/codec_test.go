package composer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayloadZeroValues(t *testing.T) {
	cases := []struct {
		kind Kind
		want Payload
	}{
		{KindPlainText, Text("")},
		{KindHeroQuote, Text("")},
		{KindTwoColumn, Pair{}},
		{KindDoubleImage, Pair{}},
		{KindInterview, QAList{}},
		{Kind("pull-quote"), Text("")},
	}
	for _, tc := range cases {
		got, err := DecodePayload(tc.kind, "")
		require.NoError(t, err, string(tc.kind))
		assert.Equal(t, tc.want, got, string(tc.kind))
	}
}

func TestCodecRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		v    Payload
	}{
		{"plain text", KindPlainText, Text("a paragraph\nwith two lines")},
		{"hero quote", KindHeroQuote, Text("We are the story.")},
		{"two column", KindTwoColumn, Pair{Left: "left col", Right: "right col"}},
		{"double image", KindDoubleImage, Pair{Left: "covers/a.png", Right: "https://cdn.example/b.jpg"}},
		{"interview", KindInterview, QAList{
			{ID: "qa-1", Question: "Why a magazine?", Answer: "Because stories matter."},
			{ID: "qa-2", Question: "What's next?", Answer: ""},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := EncodePayload(tc.v)
			got, err := DecodePayload(tc.kind, raw)
			require.NoError(t, err)
			assert.Equal(t, tc.v, got)
		})
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	for _, kind := range []Kind{KindTwoColumn, KindDoubleImage, KindInterview} {
		_, err := DecodePayload(kind, "{not json")
		require.Error(t, err, string(kind))
		assert.True(t, errors.Is(err, ErrMalformedBlockPayload))

		var mp *MalformedPayloadError
		require.True(t, errors.As(err, &mp))
		assert.Equal(t, kind, mp.Kind)
	}
}

func TestDecodePayloadTextKindsNeverFail(t *testing.T) {
	// Text kinds store the raw string itself, so arbitrary bytes decode.
	got, err := DecodePayload(KindHeroQuote, "{not json")
	require.NoError(t, err)
	assert.Equal(t, Text("{not json"), got)
}

func TestEncodeNilQAList(t *testing.T) {
	assert.Equal(t, "[]", EncodePayload(QAList(nil)))
}
