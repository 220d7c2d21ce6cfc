package queries

import (
	"context"
	"strings"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListPackagesQueryHandler handles ListPackagesQuery.
type ListPackagesQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListPackagesQueryHandler creates a handler for ListPackagesQuery that reads straight from db.
func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle applies the actor's listing scope, counts the matching packages and returns
// the requested page ordered by received_at descending.
func (h ListPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListPackagesQuery,
) (ListPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPackagesQueryResponse{}, err
	}

	filter := query.Filter()
	scope, err := h.policy.ListingScope(query.Actor(), filter.StoreID)
	if err != nil {
		return ListPackagesQueryResponse{}, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.Status != nil {
		conditions = append(conditions, "p.status = ?")
		args = append(args, filter.Status.String())
	} else {
		conditions = append(conditions, "p.status <> ?")
		args = append(args, parcel.Deleted.String())
	}
	if scope.Restricted() {
		conditions = append(conditions, "p.store_id = ?")
		args = append(args, scope.StoreID.Bytes())
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	response := ListPackagesQueryResponse{
		Items:   make([]PackageSummary, 0),
		Page:    filter.Page,
		PerPage: PackagesPerPage,
	}

	db := h.db.WithContext(ctx)
	if err = db.Raw(`SELECT COUNT(*) FROM packages p`+where, args...).Row().Scan(&response.Total); err != nil {
		return ListPackagesQueryResponse{}, err
	}

	pageArgs := append(args, PackagesPerPage, (filter.Page-1)*PackagesPerPage)
	rows, err := db.Raw(`
		SELECT`+packageSummaryColumns+`
		FROM packages p
		JOIN stores s ON s.id = p.store_id`+where+`
		ORDER BY p.received_at DESC, p.id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListPackagesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		summary, scanErr := scanPackageSummary(rows)
		if scanErr != nil {
			return ListPackagesQueryResponse{}, scanErr
		}
		response.Items = append(response.Items, summary)
	}

	if err = rows.Err(); err != nil {
		return ListPackagesQueryResponse{}, err
	}

	return response, nil
}
