// font.go -
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package tex

// designSize is the size assumed for all fonts loaded by the default
// font loader.
const designSize = 10 * unity

// Font describes a font selected by a font identifier.  Only the
// information needed by the expansion engine is kept; metrics are the
// business of the layout code.
type Font struct {
	// Name is the external font name, e.g. "cmr10".
	Name string

	// Size is the size the font is used at.
	Size Dimen

	// DesignSize is the natural size of the font.
	DesignSize Dimen

	// XHeight and Quad are used for the units "ex" and "em".
	XHeight, Quad Dimen

	// Ident is the name of the control sequence which selects the
	// font.
	Ident string
}

func (f *Font) String() string {
	if f.Size == f.DesignSize {
		return f.Name
	}
	return f.Name + " at " + f.Size.String()
}

// FontLoader loads the font with the given name.  If size is zero,
// the font is loaded at its design size.
type FontLoader interface {
	Load(name string, size Dimen) (*Font, error)
}

type defaultFonts struct{}

func (defaultFonts) Load(name string, size Dimen) (*Font, error) {
	if size == 0 {
		size = designSize
	}
	return &Font{
		Name:       name,
		Size:       size,
		DesignSize: designSize,
		XHeight:    Dimen(int64(size) * 43 / 100),
		Quad:       size,
	}, nil
}

var nullFont = &Font{Name: "nullfont", Ident: "nullfont"}
