package pickup

import (
	"context"
	"errors"
)

// ErrEmptyImage is returned when a capture yields no bytes.
var ErrEmptyImage = errors.New("image has no data")

// Image is a captured still frame or a rendered signature.
type Image struct {
	Data        []byte
	ContentType string
}

// IsEmpty reports whether the image has no data.
func (i Image) IsEmpty() bool {
	return len(i.Data) == 0
}

// Camera captures one still frame on demand.
type Camera interface {
	Capture(ctx context.Context) (Image, error)
}
