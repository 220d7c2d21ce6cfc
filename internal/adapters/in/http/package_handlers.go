package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/ports"
	"mailroom/internal/generated/servers"
	"mailroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListPackages handles GET /api/packages - one page of packages, newest receipt first.
func (s *Server) ListPackages(ctx echo.Context, params servers.ListPackagesParams) error {
	var filter queries.PackageFilter
	var problems []error

	if params.Status != nil {
		status, err := parcel.ParseStatus(string(*params.Status))
		problems = append(problems, err)
		filter.Status = &status
	}
	storeID, err := optionalID("store_id", params.StoreId)
	problems = append(problems, err)
	filter.StoreID = storeID
	if params.Page != nil {
		filter.Page = *params.Page
	}
	if err = errors.Join(problems...); err != nil {
		return err
	}

	actor, _ := caller(ctx)
	query, err := queries.NewListPackagesQuery(actor, filter)
	if err != nil {
		return err
	}
	page, err := s.queries.ListPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, presentPackagePage(page))
}

// CreatePackage handles POST /api/packages - registers a received parcel as pending.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var body servers.CreatePackageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	storeID, err := requiredID("store_id", body.StoreId)
	if err != nil {
		return err
	}
	intake := parcel.Intake{
		StoreID:    storeID,
		Code:       body.Code,
		Courier:    body.Courier,
		ReceivedAt: body.ReceivedAt,
		PostalType: parcel.PostalType(body.PostalType),
		VolumeType: parcel.VolumeType(body.VolumeType),
	}
	if body.Observations != nil {
		intake.Observations = *body.Observations
	}

	actor, _ := caller(ctx)
	packageID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(actor, packageID, intake)
	if err != nil {
		return err
	}
	if err = s.commands.CreatePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithPackage(ctx, http.StatusCreated, packageID)
}

// GetPackage handles GET /api/packages/{id}. The first view by a store manager is
// recorded in the package log before the detail is read, so the entry is part of it.
func (s *Server) GetPackage(ctx echo.Context, id servers.Id) error {
	packageID, err := requiredID("id", id)
	if err != nil {
		return err
	}

	actor, _ := caller(ctx)
	cmd, err := commands.NewMarkPackageReadCommand(actor, packageID)
	if err != nil {
		return err
	}
	if err = s.commands.MarkPackageRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithPackage(ctx, http.StatusOK, packageID)
}

// DeletePackage handles DELETE /api/packages/{id} - a soft delete.
func (s *Server) DeletePackage(ctx echo.Context, id servers.Id) error {
	packageID, err := requiredID("id", id)
	if err != nil {
		return err
	}

	actor, _ := caller(ctx)
	cmd, err := commands.NewDeletePackageCommand(actor, packageID)
	if err != nil {
		return err
	}
	if err = s.commands.DeletePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReturnPackage handles PATCH /api/packages/{id}/return.
func (s *Server) ReturnPackage(ctx echo.Context, id servers.Id) error {
	packageID, err := requiredID("id", id)
	if err != nil {
		return err
	}

	actor, _ := caller(ctx)
	cmd, err := commands.NewReturnPackageCommand(actor, packageID)
	if err != nil {
		return err
	}
	if err = s.commands.ReturnPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithPackage(ctx, http.StatusOK, packageID)
}

// CollectPackage handles POST /api/packages/{id}/collect. The form carries
// collector_name, collector_cpf, the photo file and the signature image.
func (s *Server) CollectPackage(ctx echo.Context, id servers.Id) error {
	packageID, err := requiredID("id", id)
	if err != nil {
		return err
	}

	photo, err := formPhoto(ctx)
	if err != nil {
		return err
	}

	actor, _ := caller(ctx)
	cmd, err := commands.NewCollectPackageCommand(
		actor,
		packageID,
		ctx.FormValue("collector_name"),
		ctx.FormValue("collector_cpf"),
		photo,
		ctx.FormValue("signature"),
	)
	if err != nil {
		return err
	}
	if err = s.commands.CollectPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithPackage(ctx, http.StatusOK, packageID)
}

// GetPackageEvidence handles GET /api/packages/{id}/evidence/{kind}. Access follows the
// package view rules.
func (s *Server) GetPackageEvidence(ctx echo.Context, id servers.Id, kind servers.EvidenceKind) error {
	packageID, err := requiredID("id", id)
	if err != nil {
		return err
	}

	detail, err := s.packageDetail(ctx, packageID)
	if err != nil {
		return err
	}
	if detail.Evidence == nil {
		return errs.NewObjectNotFoundError("evidence", packageID)
	}

	var path string
	switch kind {
	case servers.EvidenceKindPhoto:
		path = detail.Evidence.PhotoPath
	case servers.EvidenceKindSignature:
		path = detail.Evidence.SignaturePath
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not one of photo, signature", kind))
	}

	file, err := s.evidence.Open(ctx.Request().Context(), path)
	if err != nil {
		return err
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return ctx.Stream(http.StatusOK, contentType, file)
}

func (s *Server) respondWithPackage(ctx echo.Context, status int, packageID kernel.UUID) error {
	detail, err := s.packageDetail(ctx, packageID)
	if err != nil {
		return err
	}
	return ctx.JSON(status, presentPackageDetail(detail))
}

func (s *Server) packageDetail(ctx echo.Context, packageID kernel.UUID) (queries.PackageDetail, error) {
	actor, _ := caller(ctx)
	query, err := queries.NewGetPackageQuery(actor, packageID)
	if err != nil {
		return queries.PackageDetail{}, err
	}
	return s.queries.GetPackage.Handle(ctx.Request().Context(), query)
}

// formPhoto reads the uploaded photo. A missing file yields an empty EvidenceFile that
// the command reports as required. At most one byte past the size limit is read.
func formPhoto(ctx echo.Context) (ports.EvidenceFile, error) {
	header, err := ctx.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return ports.EvidenceFile{}, nil
	}
	if err != nil {
		return ports.EvidenceFile{}, errs.NewValueIsInvalidErrorWithCause("photo", err)
	}

	src, err := header.Open()
	if err != nil {
		return ports.EvidenceFile{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, commands.MaxPhotoSize+1))
	if err != nil {
		return ports.EvidenceFile{}, err
	}
	return ports.EvidenceFile{ContentType: header.Header.Get(echo.HeaderContentType), Data: data}, nil
}
