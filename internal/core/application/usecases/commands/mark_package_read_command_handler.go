package commands

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/pkg/errs"
)

// MarkPackageReadCommandHandler appends a "read" entry the first time a store-scoped
// user views a package. Views by other roles record nothing. The package status is
// not changed.
type MarkPackageReadCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     services.AccessPolicy
}

// NewMarkPackageReadCommandHandler creates a handler for MarkPackageReadCommand.
// Requires a PackageUoWFactory for transactional persistence.
func NewMarkPackageReadCommandHandler(uowFactory PackageUoWFactory) MarkPackageReadCommandHandler {
	return MarkPackageReadCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle returns the same errors a view of the package would: store-scoped users get
// errs.ErrForbidden for packages outside their store or unknown ids.
func (h *MarkPackageReadCommandHandler) Handle(ctx context.Context, cmd MarkPackageReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role().IsStoreScoped() {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().GetForUpdate(ctx, cmd.PackageID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err = h.policy.AuthorizeView(actor, pkg, cmd.PackageID()); err != nil {
		return err
	}

	userID := actor.UserID()
	seen, err := uow.PackageLogRepository().Exists(ctx, pkg.ID(), audit.Read, &userID)
	if err != nil {
		return err
	}
	if seen {
		return nil
	}

	entry, err := audit.NewEntry(kernel.NewUUID(), pkg.ID(), &userID, audit.Read, audit.DetailsRead, stamp())
	if err != nil {
		return err
	}
	if err = uow.PackageLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
