package mailroomapi_test

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mailroom/internal/adapters/out/mailroomapi"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/pickup"
	"mailroom/internal/generated/servers"
	"mailroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "signed.jwt.token"

func newServer(t *testing.T, register func(e *echo.Echo)) *mailroomapi.Client {
	t.Helper()
	e := echo.New()
	register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	client, err := mailroomapi.NewClient(srv.URL+"/", srv.Client())
	require.NoError(t, err)
	return client
}

func requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) != "Bearer "+token {
			return c.JSON(http.StatusUnauthorized, servers.Error{Code: 401, Message: errs.ErrUnauthenticated.Error()})
		}
		return next(c)
	}
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := mailroomapi.NewClient("localhost:8080", nil)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLoginKeepsTheToken(t *testing.T) {
	id := kernel.NewUUID()
	client := newServer(t, func(e *echo.Echo) {
		e.POST("/api/login", func(c echo.Context) error {
			var body servers.LoginRequest
			if err := c.Bind(&body); err != nil {
				return err
			}
			if body.Email != "desk@mall.test" || body.Password != "s3cret-pass" {
				return c.JSON(http.StatusUnauthorized, servers.Error{Code: 401, Message: "invalid credentials"})
			}
			return c.JSON(http.StatusOK, servers.LoginResponse{
				Token:     token,
				ExpiresAt: time.Now().Add(time.Hour),
				User:      servers.User{Id: id.Bytes(), Role: servers.RolePortaria},
			})
		})
		e.GET("/api/packages/:id", func(c echo.Context) error {
			return c.JSON(http.StatusOK, servers.PackageDetail{Id: id.Bytes(), Code: "BR123"})
		}, requireToken)
	})

	res, err := client.Login(t.Context(), "desk@mall.test", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, servers.RolePortaria, res.User.Role)
	assert.Equal(t, token, client.Token())

	detail, err := client.GetPackage(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "BR123", detail.Code)
}

func TestLoginFailure(t *testing.T) {
	client := newServer(t, func(e *echo.Echo) {
		e.POST("/api/login", func(c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, servers.Error{Code: 401, Message: "invalid credentials"})
		})
	})

	_, err := client.Login(t.Context(), "desk@mall.test", "wrong")

	require.ErrorIs(t, err, errs.ErrUnauthenticated)
	assert.Empty(t, client.Token())
	var apiErr *mailroomapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestPendingPackages(t *testing.T) {
	client := newServer(t, func(e *echo.Echo) {
		e.GET("/api/packages", func(c echo.Context) error {
			if c.QueryParam("status") != "pending" || c.QueryParam("page") != "2" {
				return c.JSON(http.StatusBadRequest, servers.Error{Code: 400, Message: "unexpected query"})
			}
			return c.JSON(http.StatusOK, servers.PackagePage{Page: 2, PerPage: 20, Total: 21, Pages: 2})
		}, requireToken)
	}).WithToken(token)

	page, err := client.PendingPackages(t.Context(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(21), page.Total)
}

func TestCollect(t *testing.T) {
	cpf, err := kernel.NewCPF("529.982.247-25")
	require.NoError(t, err)
	bundle := pickup.Bundle{
		Identity:  pickup.Identity{Name: "Joana Silva", CPF: cpf},
		Photo:     pickup.Image{Data: []byte("jpeg-bytes"), ContentType: "image/jpeg"},
		Signature: pickup.Image{Data: []byte("png-bytes"), ContentType: "image/png"},
	}
	id := kernel.NewUUID()

	t.Run("posts the evidence as a multipart form", func(t *testing.T) {
		var got struct {
			name, cpf, signature, photoType string
			photo                           []byte
		}
		client := newServer(t, func(e *echo.Echo) {
			e.POST("/api/packages/:id/collect", func(c echo.Context) error {
				if c.Param("id") != id.String() {
					return c.NoContent(http.StatusNotFound)
				}
				got.name = c.FormValue("collector_name")
				got.cpf = c.FormValue("collector_cpf")
				got.signature = c.FormValue("signature")
				fh, err := c.FormFile("photo")
				if err != nil {
					return err
				}
				got.photoType = fh.Header.Get(echo.HeaderContentType)
				f, err := fh.Open()
				if err != nil {
					return err
				}
				defer f.Close()
				got.photo, err = io.ReadAll(f)
				if err != nil {
					return err
				}
				return c.JSON(http.StatusOK, servers.PackageDetail{Status: servers.PackageStatusCollected})
			}, requireToken)
		}).WithToken(token)

		require.NoError(t, client.Collect(t.Context(), id, bundle))
		assert.Equal(t, "Joana Silva", got.name)
		assert.Equal(t, "52998224725", got.cpf)
		assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("png-bytes")), got.signature)
		assert.Equal(t, "image/jpeg", got.photoType)
		assert.Equal(t, []byte("jpeg-bytes"), got.photo)
	})

	t.Run("a conflict unwraps to an invalid transition", func(t *testing.T) {
		client := newServer(t, func(e *echo.Echo) {
			e.POST("/api/packages/:id/collect", func(c echo.Context) error {
				return c.JSON(http.StatusConflict, servers.Error{
					Code:    409,
					Message: "status transition is not allowed: collected -> collected",
				})
			})
		})

		err := client.Collect(t.Context(), id, bundle)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "collected -> collected")
	})

	t.Run("validation errors carry their fields", func(t *testing.T) {
		fields := map[string]string{"photo": "value is invalid: photo", "collector_cpf": "value is invalid: collector_cpf"}
		client := newServer(t, func(e *echo.Echo) {
			e.POST("/api/packages/:id/collect", func(c echo.Context) error {
				return c.JSON(http.StatusUnprocessableEntity, servers.Error{Code: 422, Message: "validation failed", Fields: &fields})
			})
		})

		err := client.Collect(t.Context(), id, bundle)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		var apiErr *mailroomapi.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, fields, apiErr.Fields)
		assert.True(t, strings.Index(err.Error(), "collector_cpf") < strings.Index(err.Error(), "photo:"))
	})
}

func TestLogoutForgetsTheToken(t *testing.T) {
	client := newServer(t, func(e *echo.Echo) {
		e.POST("/api/logout", func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		}, requireToken)
	}).WithToken(token)

	require.NoError(t, client.Logout(t.Context()))
	assert.Empty(t, client.Token())
}
