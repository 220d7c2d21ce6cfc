package filestore

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"mailroom/internal/core/domain/model/pickup"
	"mailroom/internal/pkg/errs"
)

// MaxFrameSize matches the photo limit of the collect operation.
const MaxFrameSize = 2 << 20

// FileCamera implements pickup.Camera over a still image that an external capture tool
// keeps overwriting, such as a webcam snapshot. Every Capture reads the file again.
type FileCamera struct {
	path string
}

// NewFileCamera creates a camera that reads the image at path.
func NewFileCamera(path string) (FileCamera, error) {
	if path == "" {
		return FileCamera{}, errs.NewValueIsRequiredError("photo path")
	}
	return FileCamera{path: path}, nil
}

// Capture reads the file anew on each call.
func (c FileCamera) Capture(ctx context.Context) (pickup.Image, error) {
	if err := ctx.Err(); err != nil {
		return pickup.Image{}, err
	}

	info, err := os.Stat(c.path)
	if err != nil {
		return pickup.Image{}, fmt.Errorf("reading frame: %w", err)
	}
	if info.Size() > MaxFrameSize {
		return pickup.Image{}, errs.NewValueIsOutOfRangeError("photo", info.Size(), 1, MaxFrameSize)
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return pickup.Image{}, fmt.Errorf("reading frame: %w", err)
	}
	if len(data) == 0 {
		return pickup.Image{}, pickup.ErrEmptyImage
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return pickup.Image{}, errs.NewValueIsInvalidErrorWithCause("photo", fmt.Errorf("%s is not an image", contentType))
	}
	return pickup.Image{Data: data, ContentType: contentType}, nil
}
