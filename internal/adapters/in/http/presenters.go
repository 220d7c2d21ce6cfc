package http

import (
	"fmt"

	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/generated/servers"
)

func presentUser(p queries.UserProfile) servers.User {
	user := servers.User{
		Id:        p.ID.Bytes(),
		Name:      p.Name,
		Email:     p.Email,
		Role:      servers.Role(p.Role.String()),
		RoleLabel: p.RoleLabel(),
		StoreName: p.StoreName,
	}
	if p.StoreID != nil {
		id := p.StoreID.Bytes()
		user.StoreId = &id
	}
	return user
}

func presentUsers(profiles []queries.UserProfile) []servers.User {
	out := make([]servers.User, len(profiles))
	for i, p := range profiles {
		out[i] = presentUser(p)
	}
	return out
}

func presentShoppings(shoppings []queries.ShoppingSummary) []servers.Shopping {
	out := make([]servers.Shopping, len(shoppings))
	for i, s := range shoppings {
		out[i] = servers.Shopping{
			Id:         s.ID.Bytes(),
			Name:       s.Name,
			Address:    s.Address,
			StoreCount: s.StoreCount,
		}
	}
	return out
}

func presentStore(s queries.StoreSummary) servers.Store {
	return servers.Store{
		Id:           s.ID.Bytes(),
		Name:         s.Name,
		ShoppingId:   s.ShoppingID.Bytes(),
		ShoppingName: s.ShoppingName,
	}
}

func presentStores(stores []queries.StoreSummary) []servers.Store {
	out := make([]servers.Store, len(stores))
	for i, s := range stores {
		out[i] = presentStore(s)
	}
	return out
}

func presentStoreDetail(d queries.StoreDetail) servers.StoreDetail {
	return servers.StoreDetail{
		Id:             d.ID.Bytes(),
		Name:           d.Name,
		ShoppingId:     d.ShoppingID.Bytes(),
		ShoppingName:   d.ShoppingName,
		RecentPackages: presentPackageSummaries(d.RecentPackages),
	}
}

func presentPackageSummary(p queries.PackageSummary) servers.PackageSummary {
	return servers.PackageSummary{
		Id:         p.ID.Bytes(),
		StoreId:    p.StoreID.Bytes(),
		StoreName:  p.StoreName,
		Code:       p.Code,
		Courier:    p.Courier,
		ReceivedAt: p.ReceivedAt,
		PostalType: servers.PostalType(p.PostalType),
		VolumeType: string(p.VolumeType),
		Status:     servers.PackageStatus(p.Status.String()),
	}
}

func presentPackageSummaries(items []queries.PackageSummary) []servers.PackageSummary {
	out := make([]servers.PackageSummary, len(items))
	for i, p := range items {
		out[i] = presentPackageSummary(p)
	}
	return out
}

func presentPackagePage(r queries.ListPackagesQueryResponse) servers.PackagePage {
	return servers.PackagePage{
		Items:   presentPackageSummaries(r.Items),
		Page:    r.Page,
		PerPage: r.PerPage,
		Total:   r.Total,
		Pages:   r.Pages(),
	}
}

func presentPackageDetail(d queries.PackageDetail) servers.PackageDetail {
	detail := servers.PackageDetail{
		Id:           d.ID.Bytes(),
		StoreId:      d.StoreID.Bytes(),
		StoreName:    d.StoreName,
		ShoppingName: d.ShoppingName,
		Code:         d.Code,
		Courier:      d.Courier,
		ReceivedAt:   d.ReceivedAt,
		PostalType:   servers.PostalType(d.PostalType),
		VolumeType:   string(d.VolumeType),
		Status:       servers.PackageStatus(d.Status.String()),
		CreatedAt:    d.CreatedAt,
		Logs:         make([]servers.LogEntry, len(d.Logs)),
	}
	if d.Observations != "" {
		observations := d.Observations
		detail.Observations = &observations
	}
	if d.Evidence != nil {
		detail.Evidence = &servers.Evidence{
			CollectedAt:   d.Evidence.CollectedAt,
			CollectorName: d.Evidence.CollectorName,
			CollectorCpf:  d.Evidence.CollectorCPF,
			PhotoUrl:      evidenceURL(d.ID, servers.EvidenceKindPhoto),
			SignatureUrl:  evidenceURL(d.ID, servers.EvidenceKindSignature),
		}
	}
	for i, entry := range d.Logs {
		detail.Logs[i] = servers.LogEntry{
			Id:        entry.ID.Bytes(),
			Action:    servers.LogAction(entry.Action.String()),
			Details:   entry.Details,
			UserName:  entry.UserName,
			CreatedAt: entry.CreatedAt,
		}
		if entry.UserID != nil {
			id := entry.UserID.Bytes()
			detail.Logs[i].UserId = &id
		}
	}
	return detail
}

// evidenceURL is the download route of a stored photo or signature. Storage paths are
// never exposed.
func evidenceURL(packageID kernel.UUID, kind servers.EvidenceKind) string {
	return fmt.Sprintf("%s/packages/%s/evidence/%s", BaseURL, packageID, kind)
}
