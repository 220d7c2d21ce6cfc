package http

import (
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListShoppings handles GET /api/shoppings.
func (s *Server) ListShoppings(ctx echo.Context) error {
	actor, _ := caller(ctx)
	query, err := queries.NewListShoppingsQuery(actor)
	if err != nil {
		return err
	}
	shoppings, err := s.queries.ListShoppings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, presentShoppings(shoppings))
}

// CreateShopping handles POST /api/shoppings.
func (s *Server) CreateShopping(ctx echo.Context) error {
	var body servers.CreateShoppingJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	actor, _ := caller(ctx)
	cmd, err := commands.NewCreateShoppingCommand(actor, kernel.NewUUID(), body.Name, body.Address)
	if err != nil {
		return err
	}
	shopping, err := s.commands.CreateShopping.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Shopping{
		Id:      shopping.ID().Bytes(),
		Name:    shopping.Name(),
		Address: shopping.Address(),
	})
}

// ListStores handles GET /api/stores.
func (s *Server) ListStores(ctx echo.Context) error {
	actor, _ := caller(ctx)
	query, err := queries.NewListStoresQuery(actor)
	if err != nil {
		return err
	}
	stores, err := s.queries.ListStores.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, presentStores(stores))
}

// CreateStore handles POST /api/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	var body servers.CreateStoreJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	shoppingID, err := requiredID("shopping_id", body.ShoppingId)
	if err != nil {
		return err
	}

	actor, _ := caller(ctx)
	cmd, err := commands.NewCreateStoreCommand(actor, kernel.NewUUID(), body.Name, shoppingID)
	if err != nil {
		return err
	}
	store, err := s.commands.CreateStore.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	detail, err := s.store(ctx, store.ID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, presentStore(detail.StoreSummary))
}

// GetStore handles GET /api/stores/{id}.
func (s *Server) GetStore(ctx echo.Context, id servers.Id) error {
	storeID, err := requiredID("id", id)
	if err != nil {
		return err
	}
	detail, err := s.store(ctx, storeID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, presentStoreDetail(detail))
}

func (s *Server) store(ctx echo.Context, id kernel.UUID) (queries.StoreDetail, error) {
	actor, _ := caller(ctx)
	query, err := queries.NewGetStoreQuery(actor, id)
	if err != nil {
		return queries.StoreDetail{}, err
	}
	return s.queries.GetStore.Handle(ctx.Request().Context(), query)
}
