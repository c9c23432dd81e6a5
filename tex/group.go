// group.go -
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
	"sort"

	"github.com/marnanel/yex-sub000/tex/tokenizer"
)

// GroupKind distinguishes groups started by "{" from groups started
// by \begingroup.
type GroupKind int

// These are the supported group kinds.
const (
	GroupSimple GroupKind = iota
	GroupSemiSimple
)

// Group records the values which need to be restored when a group
// ends.
type Group struct {
	Kind GroupKind

	// AfterGroup lists the tokens saved by \aftergroup.
	AfterGroup []*tokenizer.Token

	saved map[Key]savedValue
}

type savedValue struct {
	value   interface{}
	present bool
}

// remember stores the current value of k, unless a value has already
// been stored during this group.
func (g *Group) remember(k Key, cells map[Key]interface{}) {
	if _, seen := g.saved[k]; seen {
		return
	}
	v, present := cells[k]
	g.saved[k] = savedValue{value: v, present: present}
}

// BeginGroup starts a new group.
func (d *Document) BeginGroup(kind GroupKind) {
	d.groups = append(d.groups, &Group{
		Kind:  kind,
		saved: make(map[Key]savedValue),
	})
}

// GroupDepth returns the number of currently open groups.
func (d *Document) GroupDepth() int {
	return len(d.groups)
}

// EndGroup ends the innermost group and restores all values which
// were changed locally inside the group.  The group is returned, so
// that the caller can insert the \aftergroup tokens.
func (d *Document) EndGroup(kind GroupKind) (*Group, error) {
	n := len(d.groups)
	if n == 0 {
		if kind == GroupSimple {
			return nil, d.errorf(KindGrouping, nil, "Too many }'s")
		}
		return nil, d.errorf(KindGrouping, nil, "Extra \\endgroup")
	}
	g := d.groups[n-1]
	if g.Kind != kind {
		if kind == GroupSimple {
			return nil, d.errorf(KindGrouping, nil, "Extra }, or forgotten \\endgroup")
		}
		return nil, d.errorf(KindGrouping, nil, "Extra \\endgroup")
	}
	d.groups = d.groups[:n-1]

	keys := make([]Key, 0, len(g.saved))
	for k := range g.saved {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	trace := d.Int(ParamKey(TableInteger, "tracingrestores")) > 0
	for _, k := range keys {
		old := g.saved[k]
		if old.present {
			d.store(k, old.value)
		} else {
			d.store(k, nil)
		}
		if trace {
			d.logger.Printf("{restoring %s=%s}", k, d.describeValue(d.Get(k)))
		}
	}
	return g, nil
}
