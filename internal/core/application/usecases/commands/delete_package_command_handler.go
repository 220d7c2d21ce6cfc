package commands

import (
	"context"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
)

// DeletePackageCommandHandler marks a package deleted. Deleting an already deleted
// package fails with errs.ErrInvalidTransition and appends nothing.
type DeletePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     services.AccessPolicy
}

// NewDeletePackageCommandHandler creates a handler for DeletePackageCommand.
// Requires a PackageUoWFactory for transactional persistence.
func NewDeletePackageCommandHandler(uowFactory PackageUoWFactory) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the delete package command. Deleted packages stay in the database.
func (h *DeletePackageCommandHandler) Handle(ctx context.Context, cmd DeletePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, h.policy, cmd.Actor(), cmd.PackageID(), packageTransition{
		capability: identity.DeletePackages,
		apply:      (*parcel.Package).Delete,
		action:     audit.Deleted,
		details:    func(*parcel.Package) string { return audit.DetailsDeleted },
	})
}
