package commands

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// MaxPhotoSize is the largest accepted pickup photo.
const MaxPhotoSize = 2 << 20

// ErrCollectPackageCommandIsNotConstructed is returned when a CollectPackageCommand was not created through its constructor.
var ErrCollectPackageCommandIsNotConstructed = errors.New(
	"CollectPackageCommand must be created via NewCollectPackageCommand constructor",
)

// CollectPackageCommand hands a pending package over to a collector. The raw evidence is
// kept as received; the handler validates it after authorization so that callers without
// the capability learn nothing about their input.
type CollectPackageCommand struct { //nolint:recvcheck //using for validation
	actor         identity.Actor
	packageID     kernel.UUID
	collectorName string
	collectorCPF  string
	photo         ports.EvidenceFile
	signature     string

	guard guard.ConstructorGuard
}

// NewCollectPackageCommand builds the command. signature is a data URL
// ("data:image/png;base64,...") or bare base64.
func NewCollectPackageCommand(
	actor identity.Actor,
	packageID kernel.UUID,
	collectorName, collectorCPF string,
	photo ports.EvidenceFile,
	signature string,
) (CollectPackageCommand, error) {
	cmd := CollectPackageCommand{
		collectorName: collectorName,
		collectorCPF:  collectorCPF,
		photo:         photo,
		signature:     signature,
		guard:         guard.NewConstructorGuard(),
	}

	a, actorErr := requireActor(actor)
	if err := errors.Join(actorErr, packageID.Validate()); err != nil {
		return CollectPackageCommand{}, err
	}
	cmd.actor = a
	cmd.packageID = packageID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCollectPackageCommandIsNotConstructed if validation fails.
func (c CollectPackageCommand) Validate() error {
	return c.guard.Validate(ErrCollectPackageCommandIsNotConstructed)
}

// Actor returns the user issuing the command.
func (c CollectPackageCommand) Actor() identity.Actor {
	return c.actor
}

// PackageID returns the package ID carried by the command.
func (c CollectPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// collectInput is the validated evidence of a collect request.
type collectInput struct {
	name      string
	cpf       kernel.CPF
	photo     ports.EvidenceFile
	signature ports.EvidenceFile
}

// input checks that every part of the evidence is present and well formed, reporting
// all problems together.
func (c CollectPackageCommand) input() (collectInput, error) {
	var in collectInput

	name, err := kernel.RequiredText("collector_name", c.collectorName)
	problems := []error{err}
	in.name = name

	cpf, err := kernel.NewCPF(c.collectorCPF)
	problems = append(problems, err)
	in.cpf = cpf

	in.photo, err = checkPhoto(c.photo)
	problems = append(problems, err)

	in.signature, err = DecodeSignature(c.signature)
	problems = append(problems, err)

	if err = errors.Join(problems...); err != nil {
		return collectInput{}, err
	}
	return in, nil
}

func checkPhoto(photo ports.EvidenceFile) (ports.EvidenceFile, error) {
	if len(photo.Data) == 0 {
		return ports.EvidenceFile{}, errs.NewValueIsRequiredError("photo")
	}
	if len(photo.Data) > MaxPhotoSize {
		return ports.EvidenceFile{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"photo", len(photo.Data), 1, MaxPhotoSize, errors.New("photo must not exceed 2 MiB"),
		)
	}
	contentType := http.DetectContentType(photo.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return ports.EvidenceFile{}, errs.NewValueIsInvalidErrorWithCause(
			"photo", fmt.Errorf("%s is not an image", contentType),
		)
	}
	return ports.EvidenceFile{ContentType: contentType, Data: photo.Data}, nil
}

// DecodeSignature accepts "data:image/<type>;base64,<payload>" or bare base64 and
// returns the decoded image.
func DecodeSignature(raw string) (ports.EvidenceFile, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ports.EvidenceFile{}, errs.NewValueIsRequiredError("signature")
	}

	payload := raw
	if strings.HasPrefix(raw, "data:") {
		header, data, ok := strings.Cut(raw, ",")
		if !ok || !strings.HasSuffix(header, ";base64") || !strings.HasPrefix(header, "data:image/") {
			return ports.EvidenceFile{}, errs.NewValueIsInvalidErrorWithCause(
				"signature", errors.New("expected a base64 image data URL"),
			)
		}
		payload = data
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ports.EvidenceFile{}, errs.NewValueIsInvalidErrorWithCause("signature", err)
	}
	if len(data) == 0 {
		return ports.EvidenceFile{}, errs.NewValueIsRequiredError("signature")
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return ports.EvidenceFile{}, errs.NewValueIsInvalidErrorWithCause(
			"signature", fmt.Errorf("%s is not an image", contentType),
		)
	}
	return ports.EvidenceFile{ContentType: contentType, Data: data}, nil
}
