// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// LoadHUDFace разбирает встроенный моноширинный TTF и создаёт начертание нужного кегля.
func LoadHUDFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HUD font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HUD font face: %w", err)
	}
	return face, nil
}
