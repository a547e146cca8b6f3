package generation

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Media is a binary payload exchanged with the model.
type Media struct {
	MIMEType string
	Data     []byte
}

// DataURI encodes the media as a base64 data URI.
func (m *Media) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", m.MIMEType, base64.StdEncoding.EncodeToString(m.Data))
}

// ParseDataURI decodes a "data:<mimetype>;base64,<data>" URI into a Media
// payload.
func ParseDataURI(uri string) (*Media, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, errors.New("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, errors.New("data URI has no payload")
	}

	mimeType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return nil, errors.New("data URI is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return &Media{MIMEType: mimeType, Data: data}, nil
}
