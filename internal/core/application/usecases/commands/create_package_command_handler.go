package commands

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/pkg/errs"
)

// CreatePackageCommandHandler creates a pending package and its "created" audit entry
// in one transaction.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     services.AccessPolicy
}

// NewCreatePackageCommandHandler creates a handler for CreatePackageCommand.
// Requires a PackageUoWFactory for transactional persistence.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle authorizes the actor, checks that the store exists, then persists the package
// and appends the audit entry.
func (h *CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), identity.CreatePackages); err != nil {
		return err
	}

	now := stamp()
	pkg, err := parcel.NewPackage(cmd.PackageID(), cmd.Intake(), now)
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

	if _, err = uow.StoreRepository().Get(ctx, pkg.StoreID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("store_id", err)
		}
		return err
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return err
	}

	userID := cmd.Actor().UserID()
	entry, err := audit.NewEntry(kernel.NewUUID(), pkg.ID(), &userID, audit.Created, audit.DetailsCreated, now)
	if err != nil {
		return err
	}
	if err = uow.PackageLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
