package queries_test

import (
	"context"
	"testing"

	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// DirectoryQueriesTestSuite covers the queries over shoppings, stores and users.
type DirectoryQueriesTestSuite struct {
	dbSuite

	centro  *mall.Shopping
	norte   *mall.Shopping
	zebra   *mall.Store
	alpha   *mall.Store
	root    *identity.User
	desk    *identity.User
	manager *identity.User
}

func (s *DirectoryQueriesTestSuite) SetupTest() {
	s.dbSuite.SetupTest()

	s.norte = s.shopping("Shopping Norte")
	s.centro = s.shopping("Shopping Centro")
	s.zebra = s.store("Zebra Calçados", s.centro)
	s.alpha = s.store("Alpha Eletrônicos", s.norte)
	s.store("Beta Modas", s.centro)

	s.root = s.user("Root", "root@mall.com", identity.SuperAdmin, nil)
	s.desk = s.user("Bruna Portaria", "bruna@mall.com", identity.Portaria, nil)
	s.manager = s.user("Ana Zebra", "ana@zebra.com", identity.Loja, s.zebra)
}

func (s *DirectoryQueriesTestSuite) TestGetMe_StoreManager() {
	query, err := queries.NewGetMeQuery(s.manager.Actor())
	s.Require().NoError(err)

	got, err := queries.NewGetMeQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.True(got.ID.IsEqual(s.manager.ID()))
	s.Equal("ana@zebra.com", got.Email)
	s.Equal(identity.Loja, got.Role)
	s.Equal("Store Manager", got.RoleLabel())
	s.Require().NotNil(got.StoreID)
	s.True(got.StoreID.IsEqual(s.zebra.ID()))
	s.Require().NotNil(got.StoreName)
	s.Equal("Zebra Calçados", *got.StoreName)
}

func (s *DirectoryQueriesTestSuite) TestGetMe_WithoutStore() {
	query, err := queries.NewGetMeQuery(s.desk.Actor())
	s.Require().NoError(err)

	got, err := queries.NewGetMeQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal("Reception Desk", got.RoleLabel())
	s.Nil(got.StoreID)
	s.Nil(got.StoreName)
}

func (s *DirectoryQueriesTestSuite) TestGetMe_RemovedUser() {
	query, err := queries.NewGetMeQuery(s.desk.Actor())
	s.Require().NoError(err)
	s.Require().NoError(s.db.Exec("DELETE FROM users WHERE email = ?", "bruna@mall.com").Error)

	_, err = queries.NewGetMeQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *DirectoryQueriesTestSuite) TestListStores_OrderedByNameWithShopping() {
	query, err := queries.NewListStoresQuery(s.desk.Actor())
	s.Require().NoError(err)

	got, err := queries.NewListStoresQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("Alpha Eletrônicos", got[0].Name)
	s.Equal("Shopping Norte", got[0].ShoppingName)
	s.Equal("Beta Modas", got[1].Name)
	s.Equal("Zebra Calçados", got[2].Name)
	s.True(got[2].ShoppingID.IsEqual(s.centro.ID()))
}

func (s *DirectoryQueriesTestSuite) TestListStores_StoreManagerSeesOwnStore() {
	query, err := queries.NewListStoresQuery(s.manager.Actor())
	s.Require().NoError(err)

	got, err := queries.NewListStoresQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.True(got[0].ID.IsEqual(s.zebra.ID()))
}

func (s *DirectoryQueriesTestSuite) TestListShoppings() {
	query, err := queries.NewListShoppingsQuery(s.manager.Actor())
	s.Require().NoError(err)

	got, err := queries.NewListShoppingsQueryHandler(s.db).Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Shopping Centro", got[0].Name)
	s.Equal(2, got[0].StoreCount)
	s.Equal("Shopping Norte", got[1].Name)
	s.Equal(1, got[1].StoreCount)
}

func (s *DirectoryQueriesTestSuite) TestListUsers() {
	handler := queries.NewListUsersQueryHandler(s.db)

	query, err := queries.NewListUsersQuery(s.root.Actor())
	s.Require().NoError(err)
	got, err := handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal("Ana Zebra", got[0].Name)
	s.Require().NotNil(got[0].StoreName)
	s.Equal("Bruna Portaria", got[1].Name)
	s.Equal("Root", got[2].Name)
	s.Equal(identity.SuperAdmin, got[2].Role)
}

func (s *DirectoryQueriesTestSuite) TestListUsers_RequiresManageUsers() {
	for _, user := range []*identity.User{s.desk, s.manager} {
		query, err := queries.NewListUsersQuery(user.Actor())
		s.Require().NoError(err)

		_, err = queries.NewListUsersQueryHandler(s.db).Handle(context.Background(), query)

		s.Require().ErrorIs(err, errs.ErrForbidden)
	}
}

func TestDirectoryQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryQueriesTestSuite))
}
