package commands

import (
	"context"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
)

// ReturnPackageCommandHandler moves a pending package to returned.
type ReturnPackageCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     services.AccessPolicy
}

// NewReturnPackageCommandHandler creates a handler for ReturnPackageCommand.
// Requires a PackageUoWFactory for transactional persistence.
func NewReturnPackageCommandHandler(uowFactory PackageUoWFactory) ReturnPackageCommandHandler {
	return ReturnPackageCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the return package command.
func (h *ReturnPackageCommandHandler) Handle(ctx context.Context, cmd ReturnPackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, h.policy, cmd.Actor(), cmd.PackageID(), packageTransition{
		capability: identity.ReturnPackages,
		apply:      (*parcel.Package).Return,
		action:     audit.Returned,
		details:    func(*parcel.Package) string { return audit.DetailsReturned },
	})
}
