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
	"mailroom/internal/pkg/guard"
)

// PackageTransitionCommand identifies a package and the actor moving it. It is shared by
// the return and delete commands, which need nothing else.
type PackageTransitionCommand struct {
	actor     identity.Actor
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func newPackageTransitionCommand(actor identity.Actor, packageID kernel.UUID) (PackageTransitionCommand, error) {
	cmd := PackageTransitionCommand{guard: guard.NewConstructorGuard()}

	a, actorErr := requireActor(actor)
	if err := errors.Join(actorErr, packageID.Validate()); err != nil {
		return PackageTransitionCommand{}, err
	}

	cmd.actor = a
	cmd.packageID = packageID
	return cmd, nil
}

// Actor returns the user issuing the command.
func (c PackageTransitionCommand) Actor() identity.Actor {
	return c.actor
}

// PackageID returns the package ID carried by the command.
func (c PackageTransitionCommand) PackageID() kernel.UUID {
	return c.packageID
}

// packageTransition is one lifecycle step: who may run it, what it does to the package
// and how it is recorded.
type packageTransition struct {
	capability identity.Capability
	apply      func(pkg *parcel.Package) error
	action     audit.Action
	details    func(pkg *parcel.Package) string
}

// runTransition applies the steps in order: authorization, row lock, visibility,
// transition legality, persist and audit append, then commit. Any error leaves the
// transaction rolled back.
func runTransition(
	ctx context.Context,
	uowFactory PackageUoWFactory,
	policy services.AccessPolicy,
	actor identity.Actor,
	packageID kernel.UUID,
	t packageTransition,
) error {
	if err := policy.Authorize(actor, t.capability); err != nil {
		return err
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().GetForUpdate(ctx, packageID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err = policy.AuthorizeView(actor, pkg, packageID); err != nil {
		return err
	}

	if err = t.apply(pkg); err != nil {
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	userID := actor.UserID()
	entry, err := audit.NewEntry(kernel.NewUUID(), pkg.ID(), &userID, t.action, t.details(pkg), stamp())
	if err != nil {
		return err
	}
	if err = uow.PackageLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
