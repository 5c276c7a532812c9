// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode selects the monarch election protocol.
type Mode string

const (
	// ModeStandard elects radius-2 empires and eager backup minors.
	ModeStandard Mode = "standard"

	// ModeConservative elects radius-5 empires in two passes and no eager backups.
	ModeConservative Mode = "conservative"
)

// ParseMode accepts "standard" or "conservative" (case-insensitive).
// The empty string parses as ModeStandard.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeStandard):
		return ModeStandard, nil
	case string(ModeConservative):
		return ModeConservative, nil
	}

	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidParameter, s)
}

func (m Mode) String() string { return string(m) }

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// radii are hop distances used by one election protocol.
type radii struct {
	empire      int // empire and flow-arc radius
	spawn       int // first-pass spawn distance beyond a boundary vertex
	secondSpawn int // second-pass spawn distance (conservative only)
}

func (m Mode) radii() radii {
	if m == ModeConservative {
		return radii{empire: 5, spawn: 5, secondSpawn: 1}
	}

	return radii{empire: 2, spawn: 1}
}

// Params are the clustering inputs.
//
//	K = MaxCenters, L = MaxClientsPerCenter, α = MaxFailedCenters.
type Params struct {
	MaxCenters          int  `yaml:"max_centers" validate:"gt=0"`
	MaxClientsPerCenter int  `yaml:"max_clients_per_center" validate:"gt=0"`
	MaxFailedCenters    int  `yaml:"max_failed_centers" validate:"gte=0"`
	Mode                Mode `yaml:"mode" validate:"mode"`
}

var paramsValidate *validator.Validate

func init() {
	paramsValidate = validator.New()
	if err := paramsValidate.RegisterValidation("mode", validateMode); err != nil {
		panic(fmt.Sprintf("cluster: register mode validation: %v", err))
	}
}

func validateMode(fl validator.FieldLevel) bool {
	_, err := ParseMode(fl.Field().String())
	return err == nil
}

// Validate checks the parameter ranges. Failures wrap ErrInvalidParameter
// and name every offending field.
func (p Params) Validate() error {
	err := paramsValidate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %s", fe.Field(), fe.Value(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidParameter, strings.Join(msgs, "; "))
}

// mode returns p.Mode in canonical form. Call after Validate.
func (p Params) mode() Mode {
	m, _ := ParseMode(string(p.Mode))

	return m
}
