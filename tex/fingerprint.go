// fingerprint.go -
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

import (
	"encoding/base64"
	"fmt"
	"sort"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns a short string which identifies the current
// values of all assignable cells.  Two documents in the same state
// have the same fingerprint, independent of the order in which the
// assignments were made.
func (d *Document) Fingerprint() string {
	keys := make([]Key, 0, len(d.cells))
	for k := range d.cells {
		if volatile[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	h := sha3.NewShake128()
	for _, k := range keys {
		fmt.Fprintf(h, "%d/%s/%d=%s\n", k.Table, k.Name, k.Index, d.describeValue(d.cells[k]))
	}
	buf := make([]byte, 15)
	h.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
