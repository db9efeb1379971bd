package catalog

import (
	"context"
	"fmt"
)

// SampleGarments is the starter catalog loaded into the in-memory backend.
var SampleGarments = []Garment{
	{Name: "Linen shirt", Color: ColorWhite, Size: SizeM},
	{Name: "Hoodie", Color: ColorBlack, Size: SizeL},
	{Name: "Summer dress", Color: ColorYellow, Size: SizeS},
	{Name: "Knit sweater", Color: ColorPink, Size: SizeXL},
}

// Seed stores garments through the service.
func Seed(ctx context.Context, svc *Service, garments []Garment) error {
	for _, g := range garments {
		if _, err := svc.Create(ctx, g); err != nil {
			return fmt.Errorf("seed %q: %w", g.Name, err)
		}
	}
	return nil
}
