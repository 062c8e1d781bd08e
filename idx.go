package iniconf

import (
	"strings"
)

// Idx represents a handle to use as map key when looking up variable names in a
// case-insensitive manner.
type Idx idx

type idx struct {
	n string
}

// Idxer implements case-insensitive lookup of variables in a section.
type Idxer struct {
	names map[string]struct{}
	order []string
}

// Idx returns the Idx for the variable n, matched case-insensitively.
// In case of no match, the Idx returned is one that does not exist in the map.
func (i Idxer) Idx(n string) Idx {
	if _, ok := i.names[n]; ok {
		return Idx{n}
	}
	for in := range i.names {
		if strings.EqualFold(n, in) {
			return Idx{in}
		}
	}
	return Idx{}
}

// Names returns the variable names for the section, in the spelling and
// order they were first seen.
func (i Idxer) Names() []string {
	if i.names == nil {
		return nil
	}
	return append([]string(nil), i.order...)
}

// add adds n to Idxer unless a name matching it is already present, and
// returns the Idx for n.
func (i *Idxer) add(n string) Idx {
	if x := i.Idx(n); x != (Idx{}) {
		return x
	}
	if i.names == nil {
		i.names = make(map[string]struct{})
	}
	i.names[n] = struct{}{}
	i.order = append(i.order, n)
	return Idx{n}
}
