package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mailroom/api"
	httpadapter "mailroom/internal/adapters/in/http"
	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mall"
	"mailroom/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "Bearer signed.jwt.token"

type fixture struct {
	t      *testing.T
	router *echo.Echo

	actor     identity.Actor
	sessionID kernel.UUID

	login           *MockQuery[commands.LoginCommand, commands.LoginResult]
	logout          *MockCommand[commands.LogoutCommand]
	createUser      *MockQuery[commands.CreateUserCommand, *identity.User]
	createShopping  *MockQuery[commands.CreateShoppingCommand, *mall.Shopping]
	createStore     *MockQuery[commands.CreateStoreCommand, *mall.Store]
	createPackage   *MockCommand[commands.CreatePackageCommand]
	collectPackage  *MockCommand[commands.CollectPackageCommand]
	returnPackage   *MockCommand[commands.ReturnPackageCommand]
	deletePackage   *MockCommand[commands.DeletePackageCommand]
	markPackageRead *MockCommand[commands.MarkPackageReadCommand]

	authenticate  *MockQuery[queries.AuthenticateQuery, queries.AuthenticateQueryResponse]
	getMe         *MockQuery[queries.GetMeQuery, queries.UserProfile]
	listUsers     *MockQuery[queries.ListUsersQuery, []queries.UserProfile]
	listShoppings *MockQuery[queries.ListShoppingsQuery, []queries.ShoppingSummary]
	listStores    *MockQuery[queries.ListStoresQuery, []queries.StoreSummary]
	getStore      *MockQuery[queries.GetStoreQuery, queries.StoreDetail]
	listPackages  *MockQuery[queries.ListPackagesQuery, queries.ListPackagesQueryResponse]
	getPackage    *MockQuery[queries.GetPackageQuery, queries.PackageDetail]

	evidence *MockEvidenceReader
}

// newFixture builds the router around mocks. Requests carrying testToken authenticate as
// a user of the given role.
func newFixture(t *testing.T, role identity.Role) *fixture {
	t.Helper()

	var storeID *kernel.UUID
	if role.IsStoreScoped() {
		id := kernel.NewUUID()
		storeID = &id
	}
	user, err := identity.NewUser(kernel.NewUUID(), "Ana", "ana@mall.test", "hash", role, storeID, time.Now())
	require.NoError(t, err)

	f := &fixture{
		t:         t,
		actor:     user.Actor(),
		sessionID: kernel.NewUUID(),

		login:           &MockQuery[commands.LoginCommand, commands.LoginResult]{},
		logout:          &MockCommand[commands.LogoutCommand]{},
		createUser:      &MockQuery[commands.CreateUserCommand, *identity.User]{},
		createShopping:  &MockQuery[commands.CreateShoppingCommand, *mall.Shopping]{},
		createStore:     &MockQuery[commands.CreateStoreCommand, *mall.Store]{},
		createPackage:   &MockCommand[commands.CreatePackageCommand]{},
		collectPackage:  &MockCommand[commands.CollectPackageCommand]{},
		returnPackage:   &MockCommand[commands.ReturnPackageCommand]{},
		deletePackage:   &MockCommand[commands.DeletePackageCommand]{},
		markPackageRead: &MockCommand[commands.MarkPackageReadCommand]{},

		authenticate:  &MockQuery[queries.AuthenticateQuery, queries.AuthenticateQueryResponse]{},
		getMe:         &MockQuery[queries.GetMeQuery, queries.UserProfile]{},
		listUsers:     &MockQuery[queries.ListUsersQuery, []queries.UserProfile]{},
		listShoppings: &MockQuery[queries.ListShoppingsQuery, []queries.ShoppingSummary]{},
		listStores:    &MockQuery[queries.ListStoresQuery, []queries.StoreSummary]{},
		getStore:      &MockQuery[queries.GetStoreQuery, queries.StoreDetail]{},
		listPackages:  &MockQuery[queries.ListPackagesQuery, queries.ListPackagesQueryResponse]{},
		getPackage:    &MockQuery[queries.GetPackageQuery, queries.PackageDetail]{},

		evidence: &MockEvidenceReader{},
	}

	f.authenticate.
		On("Handle", mock.Anything, mock.MatchedBy(func(q queries.AuthenticateQuery) bool {
			return "Bearer "+q.Token() == testToken
		})).
		Return(queries.AuthenticateQueryResponse{Actor: f.actor, SessionID: f.sessionID}, nil).
		Maybe()

	server := httpadapter.NewServer(
		httpadapter.Commands{
			Login:           f.login,
			Logout:          f.logout,
			CreateUser:      f.createUser,
			CreateShopping:  f.createShopping,
			CreateStore:     f.createStore,
			CreatePackage:   f.createPackage,
			CollectPackage:  f.collectPackage,
			ReturnPackage:   f.returnPackage,
			DeletePackage:   f.deletePackage,
			MarkPackageRead: f.markPackageRead,
		},
		httpadapter.Queries{
			Authenticate:  f.authenticate,
			GetMe:         f.getMe,
			ListUsers:     f.listUsers,
			ListShoppings: f.listShoppings,
			ListStores:    f.listStores,
			GetStore:      f.getStore,
			ListPackages:  f.listPackages,
			GetPackage:    f.getPackage,
		},
		f.evidence,
		slog.New(slog.DiscardHandler),
	)
	doc, err := api.Load()
	require.NoError(t, err)
	f.router = httpadapter.NewRouter(server, doc, slog.New(slog.DiscardHandler))

	t.Cleanup(func() {
		f.login.AssertExpectations(t)
		f.logout.AssertExpectations(t)
		f.createUser.AssertExpectations(t)
		f.createShopping.AssertExpectations(t)
		f.createStore.AssertExpectations(t)
		f.createPackage.AssertExpectations(t)
		f.collectPackage.AssertExpectations(t)
		f.returnPackage.AssertExpectations(t)
		f.deletePackage.AssertExpectations(t)
		f.markPackageRead.AssertExpectations(t)
		f.getMe.AssertExpectations(t)
		f.listUsers.AssertExpectations(t)
		f.listShoppings.AssertExpectations(t)
		f.listStores.AssertExpectations(t)
		f.getStore.AssertExpectations(t)
		f.listPackages.AssertExpectations(t)
		f.getPackage.AssertExpectations(t)
		f.evidence.AssertExpectations(t)
	})

	return f
}

// do sends an authenticated request. A JSON body is given as a string.
func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, testToken)
	return f.serve(req)
}

func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	return decode[servers.Error](t, rec)
}

func forPackage(id kernel.UUID) func(interface{ PackageID() kernel.UUID }) bool {
	return func(c interface{ PackageID() kernel.UUID }) bool {
		return c.PackageID().IsEqual(id)
	}
}
