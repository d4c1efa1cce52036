// Package share encodes an itinerary into a URL-safe token and back, so a
// trip can be handed to another browser session through a single query
// parameter with no server round-trip.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/tripforge/travel-planner-go/internal/models"
)

// DecodeError reports a share token that could not be turned back into a
// well-formed itinerary.
type DecodeError struct {
	Stage string // "base64", "inflate", "json" or "schema"
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("share: decode failed at %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode serializes an itinerary to canonical JSON, deflates it and
// base64-encodes the result with the URL-safe alphabet. Tokens ride in
// URLs, so compression is worth the extra step.
func Encode(it models.Itinerary) (string, error) {
	raw, err := json.Marshal(it)
	if err != nil {
		return "", fmt.Errorf("share: marshal: %w", err)
	}
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("share: deflate: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("share: deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("share: deflate: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode is the inverse of Encode. Any failure (invalid base64, a corrupt
// deflate stream, malformed JSON, or a decoded itinerary that violates the
// schema's closed sets and ranges) comes back as a *DecodeError.
func Decode(token string) (models.Itinerary, error) {
	var it models.Itinerary
	packed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return it, &DecodeError{Stage: "base64", Err: err}
	}
	zr := flate.NewReader(bytes.NewReader(packed))
	raw, err := io.ReadAll(zr)
	if cerr := zr.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return it, &DecodeError{Stage: "inflate", Err: err}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&it); err != nil {
		return it, &DecodeError{Stage: "json", Err: err}
	}
	if err := it.Validate(); err != nil {
		return models.Itinerary{}, &DecodeError{Stage: "schema", Err: err}
	}
	return it, nil
}
