package composer

import "encoding/json"

// DecodePayload decodes a stored payload string per the kind's schema. An
// empty string decodes to the kind's zero value. Malformed JSON fails with
// a MalformedPayloadError rather than producing partial data.
func DecodePayload(kind Kind, raw string) (Payload, error) {
	if raw == "" {
		return ZeroPayload(kind), nil
	}
	switch kind {
	case KindTwoColumn, KindDoubleImage:
		var p Pair
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, &MalformedPayloadError{Kind: kind, Cause: err}
		}
		return p, nil
	case KindInterview:
		var qa QAList
		if err := json.Unmarshal([]byte(raw), &qa); err != nil {
			return nil, &MalformedPayloadError{Kind: kind, Cause: err}
		}
		return qa, nil
	default:
		// plain-text, hero-quote, and unknown kinds store the raw string.
		return Text(raw), nil
	}
}

// EncodePayload is the inverse of DecodePayload: it renders a decoded
// payload to its stored string form. Order and all fields are preserved
// verbatim for QA lists.
func EncodePayload(p Payload) string {
	switch v := p.(type) {
	case Text:
		return string(v)
	case Pair:
		b, _ := json.Marshal(v)
		return string(b)
	case QAList:
		if v == nil {
			v = QAList{}
		}
		b, _ := json.Marshal(v)
		return string(b)
	default:
		return ""
	}
}
