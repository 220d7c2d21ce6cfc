package http

import (
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/generated/servers"
	"mailroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Login handles POST /api/login - exchanges credentials for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(body.Email, body.Password)
	if err != nil {
		return err
	}
	result, err := s.commands.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	profile, err := s.profile(ctx, result.User.Actor())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      presentUser(profile),
	})
}

// Logout handles POST /api/logout - revokes the session of the presented token.
func (s *Server) Logout(ctx echo.Context) error {
	actor, sessionID := caller(ctx)
	cmd, err := commands.NewLogoutCommand(actor, sessionID)
	if err != nil {
		return err
	}
	if err = s.commands.Logout.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetMe handles GET /api/me.
func (s *Server) GetMe(ctx echo.Context) error {
	actor, _ := caller(ctx)
	profile, err := s.profile(ctx, actor)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, presentUser(profile))
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	actor, _ := caller(ctx)
	query, err := queries.NewListUsersQuery(actor)
	if err != nil {
		return err
	}
	users, err := s.queries.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, presentUsers(users))
}

// CreateUser handles POST /api/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var body servers.CreateUserJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	storeID, err := optionalID("store_id", body.StoreId)
	if err != nil {
		return err
	}

	actor, _ := caller(ctx)
	cmd, err := commands.NewCreateUserCommand(actor, kernel.NewUUID(), commands.UserInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Role:     string(body.Role),
		StoreID:  storeID,
	})
	if err != nil {
		return err
	}
	user, err := s.commands.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	profile, err := s.profile(ctx, user.Actor())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, presentUser(profile))
}

func (s *Server) profile(ctx echo.Context, actor identity.Actor) (queries.UserProfile, error) {
	query, err := queries.NewGetMeQuery(actor)
	if err != nil {
		return queries.UserProfile{}, err
	}
	return s.queries.GetMe.Handle(ctx.Request().Context(), query)
}

func requiredID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return parsed, nil
}

func optionalID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent is not an error
	}
	parsed, err := requiredID(name, *id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
