package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/audit"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type PackageQueriesTestSuite struct {
	dbSuite

	bookstore *mall.Store
	pharmacy  *mall.Store
	desk      *identity.User
	manager   *identity.User
	base      time.Time
}

func (s *PackageQueriesTestSuite) SetupTest() {
	s.dbSuite.SetupTest()

	shopping := s.shopping("Shopping Centro")
	s.bookstore = s.store("Livraria Central", shopping)
	s.pharmacy = s.store("Farmácia Popular", shopping)
	s.desk = s.user("Carlos Portaria", "carlos@mall.com", identity.Portaria, nil)
	s.manager = s.user("Ana Livraria", "ana@livraria.com", identity.Loja, s.bookstore)
	s.base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *PackageQueriesTestSuite) list(actor identity.Actor, filter queries.PackageFilter) queries.ListPackagesQueryResponse {
	query, err := queries.NewListPackagesQuery(actor, filter)
	s.Require().NoError(err)
	got, err := queries.NewListPackagesQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	return got
}

func (s *PackageQueriesTestSuite) TestListPackages_NewestFirstWithoutDeleted() {
	older := s.pkg(s.bookstore, "OLD", s.base, parcel.Pending)
	newer := s.pkg(s.pharmacy, "NEW", s.base.Add(time.Hour), parcel.Collected)
	s.pkg(s.bookstore, "GONE", s.base.Add(2*time.Hour), parcel.Deleted)

	got := s.list(s.desk.Actor(), queries.PackageFilter{})

	s.Equal(int64(2), got.Total)
	s.Require().Len(got.Items, 2)
	s.True(got.Items[0].ID.IsEqual(newer.ID()))
	s.Equal("Farmácia Popular", got.Items[0].StoreName)
	s.Equal(parcel.Collected, got.Items[0].Status)
	s.True(got.Items[1].ID.IsEqual(older.ID()))
	s.Equal(parcel.Registrada, got.Items[1].PostalType)
	s.Equal(parcel.Caixa, got.Items[1].VolumeType)
}

func (s *PackageQueriesTestSuite) TestListPackages_DeletedOnlyWhenRequested() {
	s.pkg(s.bookstore, "LIVE", s.base, parcel.Pending)
	gone := s.pkg(s.bookstore, "GONE", s.base, parcel.Deleted)
	deleted := parcel.Deleted

	got := s.list(s.desk.Actor(), queries.PackageFilter{Status: &deleted})

	s.Require().Len(got.Items, 1)
	s.True(got.Items[0].ID.IsEqual(gone.ID()))
}

func (s *PackageQueriesTestSuite) TestListPackages_StatusAndStoreFilters() {
	s.pkg(s.bookstore, "A", s.base, parcel.Pending)
	s.pkg(s.bookstore, "B", s.base, parcel.Returned)
	s.pkg(s.pharmacy, "C", s.base, parcel.Pending)
	pending := parcel.Pending
	storeID := s.pharmacy.ID()

	got := s.list(s.desk.Actor(), queries.PackageFilter{Status: &pending, StoreID: &storeID})

	s.Require().Len(got.Items, 1)
	s.Equal("C", got.Items[0].Code)
}

func (s *PackageQueriesTestSuite) TestListPackages_StoreManagerSeesOnlyOwnStore() {
	own := s.pkg(s.bookstore, "MINE", s.base, parcel.Pending)
	s.pkg(s.pharmacy, "THEIRS", s.base, parcel.Pending)
	other := s.pharmacy.ID()

	got := s.list(s.manager.Actor(), queries.PackageFilter{StoreID: &other})

	s.Equal(int64(1), got.Total)
	s.Require().Len(got.Items, 1)
	s.True(got.Items[0].ID.IsEqual(own.ID()), "the requested store filter is ignored")
}

func (s *PackageQueriesTestSuite) TestListPackages_Pagination() {
	for i := range 25 {
		s.pkg(s.bookstore, fmt.Sprintf("P%02d", i), s.base.Add(time.Duration(i)*time.Minute), parcel.Pending)
	}

	first := s.list(s.desk.Actor(), queries.PackageFilter{Page: 1})
	second := s.list(s.desk.Actor(), queries.PackageFilter{Page: 2})
	third := s.list(s.desk.Actor(), queries.PackageFilter{Page: 3})

	s.Equal(int64(25), first.Total)
	s.Equal(2, first.Pages())
	s.Len(first.Items, queries.PackagesPerPage)
	s.Equal("P24", first.Items[0].Code)
	s.Len(second.Items, 5)
	s.Equal("P04", second.Items[0].Code)
	s.Empty(third.Items)
	s.NotNil(third.Items)
}

func (s *PackageQueriesTestSuite) get(actor identity.Actor, id kernel.UUID) (queries.PackageDetail, error) {
	query, err := queries.NewGetPackageQuery(actor, id)
	s.Require().NoError(err)
	return queries.NewGetPackageQueryHandler(s.db).Handle(context.Background(), query)
}

func (s *PackageQueriesTestSuite) TestGetPackage_DetailWithChronologicalLogs() {
	p := s.pkg(s.bookstore, "BR1", s.base, parcel.Collected)
	s.log(p, s.desk, audit.Collected, "Retirada por: Maria Santos (CPF: 12345678901)", s.base.Add(2*time.Hour))
	s.log(p, s.desk, audit.Created, audit.DetailsCreated, s.base)
	s.log(p, nil, audit.Notified, "Lembrete", s.base.Add(time.Hour))

	got, err := s.get(s.desk.Actor(), p.ID())

	s.Require().NoError(err)
	s.Equal("BR1", got.Code)
	s.Equal("Frágil", got.Observations)
	s.Equal("Shopping Centro", got.ShoppingName)
	s.Require().NotNil(got.Evidence)
	s.Equal("Maria Santos", got.Evidence.CollectorName)
	s.Equal("12345678901", got.Evidence.CollectorCPF)
	s.Equal("photos/p.png", got.Evidence.PhotoPath)

	s.Require().Len(got.Logs, 3)
	s.Equal(audit.Created, got.Logs[0].Action)
	s.Require().NotNil(got.Logs[0].UserName)
	s.Equal("Carlos Portaria", *got.Logs[0].UserName)
	s.Equal(audit.Notified, got.Logs[1].Action)
	s.Nil(got.Logs[1].UserID)
	s.Nil(got.Logs[1].UserName)
	s.Equal(audit.Collected, got.Logs[2].Action)
}

func (s *PackageQueriesTestSuite) TestGetPackage_PendingHasNoEvidence() {
	p := s.pkg(s.bookstore, "BR2", s.base, parcel.Pending)

	got, err := s.get(s.manager.Actor(), p.ID())

	s.Require().NoError(err)
	s.Nil(got.Evidence)
	s.NotNil(got.Logs)
	s.Empty(got.Logs)
}

func (s *PackageQueriesTestSuite) TestGetPackage_StoreManagerOutsideStoreIsForbidden() {
	p := s.pkg(s.pharmacy, "BR3", s.base, parcel.Pending)

	_, err := s.get(s.manager.Actor(), p.ID())
	s.Require().ErrorIs(err, errs.ErrForbidden)

	_, err = s.get(s.manager.Actor(), kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrForbidden, "unknown ids look the same as foreign ones")
}

func (s *PackageQueriesTestSuite) TestGetPackage_UnknownIsNotFoundForStaff() {
	_, err := s.get(s.desk.Actor(), kernel.NewUUID())

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PackageQueriesTestSuite) TestGetStore_RecentPackages() {
	for i := range 12 {
		s.pkg(s.bookstore, fmt.Sprintf("S%02d", i), s.base.Add(time.Duration(i)*time.Minute), parcel.Pending)
	}
	s.pkg(s.bookstore, "GONE", s.base.Add(time.Hour), parcel.Deleted)

	query, err := queries.NewGetStoreQuery(s.manager.Actor(), s.bookstore.ID())
	s.Require().NoError(err)
	got, err := queries.NewGetStoreQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal("Livraria Central", got.Name)
	s.Equal("Shopping Centro", got.ShoppingName)
	s.Require().Len(got.RecentPackages, queries.RecentPackagesLimit)
	s.Equal("S11", got.RecentPackages[0].Code)
	s.Equal("S02", got.RecentPackages[9].Code)
}

func (s *PackageQueriesTestSuite) TestGetStore_Access() {
	handler := queries.NewGetStoreQueryHandler(s.db)

	query, err := queries.NewGetStoreQuery(s.manager.Actor(), s.pharmacy.ID())
	s.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	s.Require().ErrorIs(err, errs.ErrForbidden)

	query, err = queries.NewGetStoreQuery(s.desk.Actor(), kernel.NewUUID())
	s.Require().NoError(err)
	_, err = handler.Handle(context.Background(), query)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPackageQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(PackageQueriesTestSuite))
}
