package ports

import (
	"context"
	"io"

	"mailroom/internal/core/domain/model/kernel"
)

// EvidenceKind separates photos from signatures in storage.
type EvidenceKind string

const (
	PhotoEvidence     EvidenceKind = "photos"
	SignatureEvidence EvidenceKind = "signatures"
)

// EvidenceFile is an uploaded or decoded evidence image.
type EvidenceFile struct {
	ContentType string
	Data        []byte
}

// EvidenceStorage keeps pickup photos and signatures. Paths returned by Save are
// relative and are what the package stores.
type EvidenceStorage interface {
	Save(ctx context.Context, kind EvidenceKind, packageID kernel.UUID, file EvidenceFile) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
