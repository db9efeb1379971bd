package catalog

import "time"

// Color of a garment.
type Color string

const (
	ColorPink   Color = "pink"
	ColorBlack  Color = "black"
	ColorWhite  Color = "white"
	ColorYellow Color = "yellow"
)

// Size of a garment.
type Size string

const (
	SizeXS  Size = "xs"
	SizeS   Size = "s"
	SizeM   Size = "m"
	SizeL   Size = "l"
	SizeXL  Size = "xl"
	SizeXXL Size = "xxl"
)

// Garment is a single catalog entry.
type Garment struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Color      Color     `json:"color"`
	Size       Size      `json:"size"`
	PhotoURL   string    `json:"photo_url"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Filter narrows a listing. Empty fields match everything.
type Filter struct {
	Color Color
	Size  Size
}
