package services

import (
	"fmt"
	"strings"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/tutor/magpie"
)

// Registry holds the loaded sets in load order. It is read only once built.
type Registry struct {
	sets   []*magpie.Set
	byCode map[cards.SetCode]*magpie.Set
}

func NewRegistry(sets ...*magpie.Set) (*Registry, error) {
	r := &Registry{
		sets:   make([]*magpie.Set, 0, len(sets)),
		byCode: make(map[cards.SetCode]*magpie.Set, len(sets)),
	}
	for _, set := range sets {
		if _, ok := r.byCode[set.Code]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSet, set.Code)
		}
		r.byCode[set.Code] = set
		r.sets = append(r.sets, set)
	}
	return r, nil
}

// Get looks a set up by its code, ignoring case.
func (r *Registry) Get(code string) (*magpie.Set, bool) {
	setCode, ok := cards.NewSetCode(strings.ToLower(code))
	if !ok {
		return nil, false
	}
	set, ok := r.byCode[setCode]
	return set, ok
}

func (r *Registry) All() []*magpie.Set {
	return r.sets
}

func (r *Registry) Len() int {
	return len(r.sets)
}
