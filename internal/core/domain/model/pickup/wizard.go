package pickup

import (
	"context"
	"errors"
	"fmt"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
)

var (
	ErrWrongStep   = errors.New("operation is not available at this step")
	ErrNoPhoto     = errs.NewValueIsRequiredError("photo")
	ErrNoSignature = errs.NewValueIsRequiredError("signature")
)

// Step identifies the wizard screen.
type Step int

const (
	StepIdentity Step = iota + 1
	StepPhoto
	StepSignature
)

// String returns the step name shown in the screen title.
func (s Step) String() string {
	switch s {
	case StepIdentity:
		return "identity"
	case StepPhoto:
		return "photo"
	case StepSignature:
		return "signature"
	default:
		return "unknown"
	}
}

// Identity is the validated collector identity.
type Identity struct {
	Name string
	CPF  kernel.CPF
}

// Bundle is everything the collect transition needs.
type Bundle struct {
	Identity  Identity
	Photo     Image
	Signature Image
}

// Collector performs the collect transition for a package.
type Collector interface {
	Collect(ctx context.Context, packageID kernel.UUID, bundle Bundle) error
}

type state interface {
	step() Step
}

type identityState struct{}

type photoState struct {
	identity Identity
}

type signatureState struct {
	identity Identity
	photo    Image
}

func (identityState) step() Step { return StepIdentity }
func (photoState) step() Step { return StepPhoto }
func (signatureState) step() Step { return StepSignature }

// draft holds raw input. It is kept across back navigation and failed submissions.
type draft struct {
	name     string
	cpfInput string
	photo    Image
	pad      *Pad
}

// Wizard drives one pickup confirmation for one package.
type Wizard struct {
	packageID kernel.UUID
	camera    Camera
	draft     draft
	state     state
}

// NewWizard starts a wizard at the identity step with an empty signature pad of the given size.
func NewWizard(packageID kernel.UUID, camera Camera, padWidth, padHeight int) (*Wizard, error) {
	if err := packageID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("package_id", err)
	}
	if camera == nil {
		return nil, errs.NewValueIsRequiredError("camera")
	}
	if padWidth < 1 || padHeight < 1 {
		return nil, errs.NewValueIsOutOfRangeError("pad", fmt.Sprintf("%dx%d", padWidth, padHeight), "1x1", "any")
	}

	return &Wizard{
		packageID: packageID,
		camera:    camera,
		draft:     draft{pad: NewPad(padWidth, padHeight)},
		state:     identityState{},
	}, nil
}

// PackageID returns the wizard's package ID.
func (w *Wizard) PackageID() kernel.UUID {
	return w.packageID
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.state.step()
}

// Name returns the collector name typed so far.
func (w *Wizard) Name() string {
	return w.draft.name
}

// CPFInput returns the normalized CPF digits typed so far.
func (w *Wizard) CPFInput() string {
	return w.draft.cpfInput
}

// Photo returns the retained photo, if any.
func (w *Wizard) Photo() (Image, bool) {
	return w.draft.photo, !w.draft.photo.IsEmpty()
}

// Pad returns the signature pad.
func (w *Wizard) Pad() *Pad {
	return w.draft.pad
}

// SetName updates the collector name typed at the identity step.
func (w *Wizard) SetName(name string) error {
	if _, ok := w.state.(identityState); !ok {
		return ErrWrongStep
	}
	w.draft.name = name
	return nil
}

// SetCPF updates the CPF input, stripping non-digits and truncating to eleven digits.
// It returns the normalized input.
func (w *Wizard) SetCPF(raw string) (string, error) {
	if _, ok := w.state.(identityState); !ok {
		return w.draft.cpfInput, ErrWrongStep
	}
	w.draft.cpfInput = kernel.TruncateCPFInput(raw)
	return w.draft.cpfInput, nil
}

// CapturePhoto replaces the retained photo with a new frame from the camera.
func (w *Wizard) CapturePhoto(ctx context.Context) error {
	if _, ok := w.state.(photoState); !ok {
		return ErrWrongStep
	}
	img, err := w.camera.Capture(ctx)
	if err != nil {
		return fmt.Errorf("capture photo: %w", err)
	}
	if img.IsEmpty() {
		return ErrEmptyImage
	}
	w.draft.photo = img
	return nil
}

// DiscardPhoto drops the retained photo so another can be captured.
func (w *Wizard) DiscardPhoto() error {
	if _, ok := w.state.(photoState); !ok {
		return ErrWrongStep
	}
	w.draft.photo = Image{}
	return nil
}

// ClearSignature resets the drawing pad.
func (w *Wizard) ClearSignature() error {
	if _, ok := w.state.(signatureState); !ok {
		return ErrWrongStep
	}
	w.draft.pad.Clear()
	return nil
}

// Next validates the current step and advances. The signature step has no next;
// use Submit.
func (w *Wizard) Next() error {
	switch s := w.state.(type) {
	case identityState:
		identity, err := w.identity()
		if err != nil {
			return err
		}
		w.state = photoState{identity: identity}
	case photoState:
		if w.draft.photo.IsEmpty() {
			return ErrNoPhoto
		}
		w.state = signatureState{identity: s.identity, photo: w.draft.photo}
	default:
		return ErrWrongStep
	}
	return nil
}

// Back returns to the previous step keeping every input. It is a no-op at identity.
func (w *Wizard) Back() {
	switch s := w.state.(type) {
	case photoState:
		w.state = identityState{}
	case signatureState:
		w.state = photoState{identity: s.identity}
	}
}

// Bundle assembles the evidence. It is only available at the signature step with a
// non-empty signature.
func (w *Wizard) Bundle() (Bundle, error) {
	s, ok := w.state.(signatureState)
	if !ok {
		return Bundle{}, ErrWrongStep
	}
	if w.draft.pad.IsEmpty() {
		return Bundle{}, ErrNoSignature
	}
	signature, err := w.draft.pad.Render(4)
	if err != nil {
		return Bundle{}, fmt.Errorf("render signature: %w", err)
	}
	return Bundle{Identity: s.identity, Photo: s.photo, Signature: signature}, nil
}

// Submit sends the bundle through collector. Success discards the draft and returns to
// the identity step; failure keeps everything for a retry.
func (w *Wizard) Submit(ctx context.Context, collector Collector) error {
	bundle, err := w.Bundle()
	if err != nil {
		return err
	}
	if err := collector.Collect(ctx, w.packageID, bundle); err != nil {
		return err
	}
	w.Reset()
	return nil
}

// Reset discards the draft. Cancelling a pickup is a Reset with no Collector call.
func (w *Wizard) Reset() {
	w.draft = draft{pad: NewPad(w.draft.pad.Width(), w.draft.pad.Height())}
	w.state = identityState{}
}

func (w *Wizard) identity() (Identity, error) {
	name, nameErr := kernel.RequiredText("collector_name", w.draft.name)
	cpf, cpfErr := kernel.NewCPF(w.draft.cpfInput)
	if err := errors.Join(nameErr, cpfErr); err != nil {
		return Identity{}, err
	}
	return Identity{Name: name, CPF: cpf}, nil
}
