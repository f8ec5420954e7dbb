package core

// Color identifies how a screen cell is painted. The platform maps each
// value to a terminal style; tile colors carry both foreground and
// background.
type Color uint8

// Text colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
)

// Board and tile colors.
const (
	ColorBoard Color = iota + 32 // grid lines and frame
	ColorTileEmpty
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // anything above 2048
)

// IsTile reports whether c paints a tile or the board behind it.
func (c Color) IsTile() bool {
	return c >= ColorBoard && c <= ColorTileSuper
}
