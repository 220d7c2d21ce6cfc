package parcel

import (
	"fmt"
	"sort"
	"strings"

	"mailroom/internal/pkg/errs"
)

// PostalType distinguishes ordinary mail from registered (tracked, signed-for) mail.
type PostalType string

const (
	Simples    PostalType = "simples"
	Registrada PostalType = "registrada"
)

// Validate accepts only simples and registrada.
func (p PostalType) Validate() error {
	if p != Simples && p != Registrada {
		return errs.NewValueIsInvalidErrorWithCause(
			"postal_type",
			fmt.Errorf("%q is not one of simples, registrada", string(p)),
		)
	}
	return nil
}

// VolumeType describes the physical form of the parcel. New kinds are added by
// declaring a constant and listing it in knownVolumeTypes.
type VolumeType string

const (
	Caixa    VolumeType = "caixa"
	Envelope VolumeType = "envelope"
	Pacote   VolumeType = "pacote"
	Sedex    VolumeType = "sedex"
)

var knownVolumeTypes = map[VolumeType]struct{}{
	Caixa:    {},
	Envelope: {},
	Pacote:   {},
	Sedex:    {},
}

// VolumeTypes returns the accepted volume types in alphabetical order.
func VolumeTypes() []VolumeType {
	out := make([]VolumeType, 0, len(knownVolumeTypes))
	for v := range knownVolumeTypes {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate accepts the registered volume types only.
func (v VolumeType) Validate() error {
	if _, ok := knownVolumeTypes[v]; !ok {
		names := make([]string, 0, len(knownVolumeTypes))
		for _, known := range VolumeTypes() {
			names = append(names, string(known))
		}
		return errs.NewValueIsInvalidErrorWithCause(
			"volume_type",
			fmt.Errorf("%q is not one of %s", string(v), strings.Join(names, ", ")),
		)
	}
	return nil
}
