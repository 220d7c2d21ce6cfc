package audit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through its constructor.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Front desk wording for the log details column.
const (
	DetailsCreated  = "Encomenda cadastrada na portaria"
	DetailsReturned = "Encomenda devolvida ao remetente"
	DetailsDeleted  = "Encomenda excluída pelo administrador"
	DetailsRead     = "Encomenda visualizada pela loja"
)

// CollectedDetails renders the collected entry text for the given collector.
func CollectedDetails(evidence parcel.Evidence) string {
	return fmt.Sprintf("Retirada por: %s (CPF: %s)", evidence.CollectorName(), evidence.CollectorCPF())
}

// NotifiedDetails renders the reminder entry text.
func NotifiedDetails(waiting time.Duration) string {
	return fmt.Sprintf("Lembrete: encomenda aguardando retirada há %s", waiting.Truncate(time.Hour))
}

// Entry is one row of a package's audit trail. UserID is nil for actions taken by the
// system itself, such as scheduled reminders.
type Entry struct {
	id        kernel.UUID
	packageID kernel.UUID
	userID    *kernel.UUID
	action    Action
	details   string
	createdAt time.Time

	isConstructed bool
}

// NewEntry creates a log entry. userID is nil for entries written by the system.
func NewEntry(
	id, packageID kernel.UUID,
	userID *kernel.UUID,
	action Action,
	details string,
	createdAt time.Time,
) (Entry, error) {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := packageID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("package_id", err))
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("user_id", err))
		}
	}
	problems = append(problems, action.Validate())
	if createdAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("created_at"))
	}
	if err := errors.Join(problems...); err != nil {
		return Entry{}, err
	}

	e := Entry{
		id:            id,
		packageID:     packageID,
		action:        action,
		details:       strings.TrimSpace(details),
		createdAt:     createdAt,
		isConstructed: true,
	}
	if userID != nil {
		u := *userID
		e.userID = &u
	}
	return e, nil
}

// RestoreEntry rebuilds a persisted entry.
func RestoreEntry(
	id, packageID kernel.UUID,
	userID *kernel.UUID,
	action Action,
	details string,
	createdAt time.Time,
) (Entry, error) {
	return NewEntry(id, packageID, userID, action, details, createdAt)
}

// Validate reports ErrEntryIsNotConstructed for a zero or hand-built Entry.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e Entry) ID() kernel.UUID {
	return e.id
}

// PackageID returns the entry's package ID.
func (e Entry) PackageID() kernel.UUID {
	return e.packageID
}

// UserID returns a copy of the acting user id, or nil for system entries.
func (e Entry) UserID() *kernel.UUID {
	if e.userID == nil {
		return nil
	}
	u := *e.userID
	return &u
}

// Action returns the entry's action.
func (e Entry) Action() Action {
	return e.action
}

// Details returns the entry's details.
func (e Entry) Details() string {
	return e.details
}

// CreatedAt returns when the entry was recorded.
func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}
