package recognition

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

const DefaultMIMEType = "image/jpeg"

var ErrEmptyImage = errors.New("image is required")

type Image struct {
	Data     []byte
	MIMEType string
}

// DecodeImage accepts a data URL ("data:image/png;base64,...") or bare base64.
func DecodeImage(s string) (Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Image{}, ErrEmptyImage
	}
	mime := DefaultMIMEType
	payload := s
	if strings.HasPrefix(s, "data:") {
		header, rest, ok := strings.Cut(s, ",")
		if !ok {
			return Image{}, errors.New("malformed data url")
		}
		payload = rest
		meta := strings.TrimPrefix(header, "data:")
		meta = strings.TrimSuffix(meta, ";base64")
		if meta != "" {
			mime = meta
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// some capture libraries drop padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return Image{}, errors.Wrap(err, "decode image")
		}
	}
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}
	return Image{Data: data, MIMEType: mime}, nil
}
