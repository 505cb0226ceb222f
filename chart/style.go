// Package chart provides the plot plumbing shared by the profile,
// scatter and geo packages: a color palette, XY point types, subplot
// grids and secondary axes, all on top of gonum.org/v1/plot.
package chart

import (
	"image/color"
	"strconv"
	"strings"
)

var (
	Colors = []color.Color{
		// POP https://coolors.co/50514f-f25f5c-ffe066-247ba0-70c1b3
		Color("247BA0"),
		Color("F25F5C"),
		Color("70C1B3"),
		Color("FFE066"),
		Color("50514F"),

		// COOL https://coolors.co/d8dbe2-a9bcd0-58a4b0-373f51-1b1b1e
		Color("58A4B0"),
		Color("A9BCD0"),
		Color("373F51"),
		Color("D8DBE2"),
		Color("1B1B1E"),
	}

	Red   = Color("ff3300")
	Green = Color("339933")
	Blue  = Color("247ba0")
)

// Color parses a 6 or 8 digit hex color, with or without a leading
// '#'. Invalid input yields black.
func Color(hash string) color.Color {
	if strings.HasPrefix(hash, "#") {
		hash = hash[1:]
	}
	if len(hash) != 6 && len(hash) != 8 {
		return color.Black
	}
	var c color.RGBA
	c.A = 255
	cs := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(hash); i += 2 {
		ui, err := strconv.ParseUint(hash[i:i+2], 16, 8)
		if err != nil {
			return c
		}
		*cs[i/2] = uint8(ui)
	}
	return c
}

// PaletteColor returns the i-th palette color, wrapping around.
func PaletteColor(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return Colors[i%len(Colors)]
}
