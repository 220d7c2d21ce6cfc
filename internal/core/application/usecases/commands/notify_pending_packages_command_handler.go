package commands

import (
	"context"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/kernel"
)

// NotifyPendingPackagesCommandHandler appends one "notified" system entry to each pending
// package received more than After ago. A package is reminded at most once.
type NotifyPendingPackagesCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewNotifyPendingPackagesCommandHandler creates a handler for NotifyPendingPackagesCommand.
// Requires a PackageUoWFactory for transactional persistence.
func NewNotifyPendingPackagesCommandHandler(uowFactory PackageUoWFactory) NotifyPendingPackagesCommandHandler {
	return NotifyPendingPackagesCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of reminders appended.
func (h *NotifyPendingPackagesCommandHandler) Handle(ctx context.Context, cmd NotifyPendingPackagesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.PackageRepository().GetAllPendingReceivedBefore(ctx, cmd.Now().Add(-cmd.After()))
	if err != nil {
		return 0, err
	}

	notified := 0
	for _, pkg := range pending {
		done, existsErr := uow.PackageLogRepository().Exists(ctx, pkg.ID(), audit.Notified, nil)
		if existsErr != nil {
			return 0, existsErr
		}
		if done {
			continue
		}

		entry, entryErr := audit.NewEntry(kernel.NewUUID(), pkg.ID(), nil, audit.Notified,
			audit.NotifiedDetails(cmd.Now().Sub(pkg.ReceivedAt())), cmd.Now())
		if entryErr != nil {
			return 0, entryErr
		}
		if err = uow.PackageLogRepository().Append(ctx, entry); err != nil {
			return 0, err
		}
		notified++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return notified, nil
}
