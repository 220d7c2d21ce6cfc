package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackageQueryHandler loads a package, checks that the actor may see it, then reads
// its log in creation order.
type GetPackageQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetPackageQueryHandler creates a handler for GetPackageQuery that reads straight from db.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the package with its full history.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (PackageDetail, error) {
	if err := query.Validate(); err != nil {
		return PackageDetail{}, err
	}

	db := h.db.WithContext(ctx)
	detail, found, err := h.loadPackage(db, query.PackageID())
	if err != nil {
		return PackageDetail{}, err
	}

	var storeID *kernel.UUID
	if found {
		storeID = &detail.StoreID
	}
	if err = h.policy.AuthorizeViewInStore(query.Actor(), storeID, query.PackageID()); err != nil {
		return PackageDetail{}, err
	}

	if detail.Logs, err = h.loadLogs(db, query.PackageID()); err != nil {
		return PackageDetail{}, err
	}
	return detail, nil
}

func (h GetPackageQueryHandler) loadPackage(db *gorm.DB, id kernel.UUID) (PackageDetail, bool, error) {
	row := db.Raw(`
		SELECT`+packageSummaryColumns+`,
			p.observations,
			sh.name,
			p.created_at,
			p.collected_at,
			p.collector_name,
			p.collector_cpf,
			p.photo_path,
			p.signature_path
		FROM packages p
		JOIN stores s ON s.id = p.store_id
		JOIN shoppings sh ON sh.id = s.shopping_id
		WHERE p.id = ?
	`, id.Bytes()).Row()

	var (
		detail        PackageDetail
		observations  sql.NullString
		collectedAt   *time.Time
		collectorName *string
		collectorCPF  *string
		photoPath     *string
		signaturePath *string
	)
	summary, err := scanPackageSummary(scanTail{row: row, tail: []any{
		&observations,
		&detail.ShoppingName,
		&detail.CreatedAt,
		&collectedAt,
		&collectorName,
		&collectorCPF,
		&photoPath,
		&signaturePath,
	}})
	if errors.Is(err, sql.ErrNoRows) {
		return PackageDetail{}, false, nil
	}
	if err != nil {
		return PackageDetail{}, false, err
	}

	detail.PackageSummary = summary
	detail.Observations = observations.String
	if collectedAt != nil {
		detail.Evidence = &PackageEvidence{
			CollectedAt:   *collectedAt,
			CollectorName: deref(collectorName),
			CollectorCPF:  deref(collectorCPF),
			PhotoPath:     deref(photoPath),
			SignaturePath: deref(signaturePath),
		}
	}
	return detail, true, nil
}

func (h GetPackageQueryHandler) loadLogs(db *gorm.DB, packageID kernel.UUID) ([]LogEntry, error) {
	rows, err := db.Raw(`
		SELECT
			l.id,
			l.action,
			l.details,
			l.user_id,
			u.name,
			l.created_at
		FROM package_logs l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE l.package_id = ?
		ORDER BY l.created_at, l.id
	`, packageID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]LogEntry, 0)
	for rows.Next() {
		var (
			entry  LogEntry
			id     uuid.UUID
			userID *uuid.UUID
			action string
		)
		if err = rows.Scan(&id, &action, &entry.Details, &userID, &entry.UserName, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if entry.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if entry.Action, err = audit.ParseAction(action); err != nil {
			return nil, err
		}
		if entry.UserID, err = optionalUUID(userID); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// scanTail lets scanPackageSummary read a row that has extra columns after the summary.
type scanTail struct {
	row  rowScanner
	tail []any
}

// Scan reads dest followed by the tail columns.
func (s scanTail) Scan(dest ...any) error {
	return s.row.Scan(append(dest, s.tail...)...)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
