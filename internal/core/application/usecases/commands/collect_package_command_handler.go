package commands

import (
	"context"
	"errors"
	"log/slog"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// CollectPackageCommandHandler records a pickup.
//
// The steps run in a fixed order and stop at the first failure:
//  1. the actor must hold CollectPackages
//  2. name, CPF, photo and signature must all be present and valid
//  3. the package row is locked and must be pending
//  4. photo and signature are stored
//  5. the package is updated and the "collected" entry appended, then committed
//
// If anything after step 4 fails, the stored files are removed again.
type CollectPackageCommandHandler struct {
	uowFactory PackageUoWFactory
	storage    ports.EvidenceStorage
	policy     services.AccessPolicy
	logger     *slog.Logger
}

// NewCollectPackageCommandHandler creates a handler for CollectPackageCommand.
// Requires a PackageUoWFactory for transactional persistence and storage for the evidence images.
func NewCollectPackageCommandHandler(
	uowFactory PackageUoWFactory,
	storage ports.EvidenceStorage,
	logger *slog.Logger,
) CollectPackageCommandHandler {
	return CollectPackageCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		policy:     services.NewAccessPolicy(),
		logger:     logger.With("component", "collect_package"),
	}
}

// Handle processes the collect package command. The evidence images are stored before
// the transaction commits and are deleted again if it does not.
func (h *CollectPackageCommandHandler) Handle(ctx context.Context, cmd CollectPackageCommand) (err error) {
	if err = cmd.Validate(); err != nil {
		return err
	}

	if err = h.policy.Authorize(cmd.Actor(), identity.CollectPackages); err != nil {
		return err
	}

	in, err := cmd.input()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().GetForUpdate(ctx, cmd.PackageID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err = h.policy.AuthorizeView(cmd.Actor(), pkg, cmd.PackageID()); err != nil {
		return err
	}
	if err = pkg.ValidateCollect(); err != nil {
		return err
	}

	var stored []string
	defer func() {
		if err != nil {
			h.removeStored(ctx, stored)
		}
	}()

	photoPath, err := h.storage.Save(ctx, ports.PhotoEvidence, pkg.ID(), in.photo)
	if err != nil {
		return err
	}
	stored = append(stored, photoPath)

	signaturePath, err := h.storage.Save(ctx, ports.SignatureEvidence, pkg.ID(), in.signature)
	if err != nil {
		return err
	}
	stored = append(stored, signaturePath)

	now := stamp()
	evidence, err := parcel.NewEvidence(in.name, in.cpf, photoPath, signaturePath, now)
	if err != nil {
		return err
	}
	if err = pkg.Collect(evidence); err != nil {
		return err
	}
	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	userID := cmd.Actor().UserID()
	entry, err := audit.NewEntry(kernel.NewUUID(), pkg.ID(), &userID, audit.Collected, audit.CollectedDetails(evidence), now)
	if err != nil {
		return err
	}
	if err = uow.PackageLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CollectPackageCommandHandler) removeStored(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := h.storage.Remove(ctx, path); err != nil {
			h.logger.ErrorContext(ctx, "Failed to remove evidence file", "path", path, "error", err)
		}
	}
}
