package catalog

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	colors = []interface{}{ColorPink, ColorBlack, ColorWhite, ColorYellow}
	sizes  = []interface{}{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}
)

// Validate checks the filter values against the known enums.
func (f Filter) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Color, validation.In(colors...)),
		validation.Field(&f.Size, validation.In(sizes...)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	return nil
}

// Validate checks a garment before it is stored.
func (g Garment) Validate() error {
	err := validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&g.Color, validation.Required, validation.In(colors...)),
		validation.Field(&g.Size, validation.Required, validation.In(sizes...)),
		validation.Field(&g.PhotoURL, validation.Length(0, 255), is.URL),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidGarment, err)
	}
	return nil
}
