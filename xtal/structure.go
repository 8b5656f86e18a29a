// SPDX-License-Identifier: MIT
// Package xtal: basis structures (prim and child), grounded on
// SearchData.cc's PrimSearchData constructor, which validates that every
// prim site's allowed-occupant list names atomic species (never molecular
// occupants) before the mapping search can use it.

package xtal

// VacancyLabel is the conventional occupant name representing an unoccupied
// site, matching CASM's own convention.
const VacancyLabel = "Va"

// Site is one basis site of a structure: a Cartesian coordinate and the
// list of occupant species the mapping search is allowed to place there
// (for the prim) or the single species actually present (for the child).
type Site struct {
	CartesianCoord Vec3
	AllowedOccupants []string
}

// IsVacancy reports whether label denotes the vacancy occupant.
func IsVacancy(label string) bool { return label == VacancyLabel }

// AllowsVacancy reports whether s permits an unoccupied site.
func (s Site) AllowsVacancy() bool {
	for _, occ := range s.AllowedOccupants {
		if IsVacancy(occ) {
			return true
		}
	}
	return false
}

// AllowsSpecies reports whether s permits the given occupant species.
func (s Site) AllowsSpecies(label string) bool {
	for _, occ := range s.AllowedOccupants {
		if occ == label {
			return true
		}
	}
	return false
}

// BasicStructure is an idealized reference (prim) or candidate (child)
// crystal structure: a lattice plus a basis of sites.
type BasicStructure struct {
	Lattice Lattice
	Sites   []Site
}

// NewBasicStructure validates and constructs a structure. Every site's
// AllowedOccupants must be non-empty.
func NewBasicStructure(lattice Lattice, sites []Site) (BasicStructure, error) {
	if len(sites) == 0 {
		return BasicStructure{}, ErrInvalidInput
	}
	for _, s := range sites {
		if len(s.AllowedOccupants) == 0 {
			return BasicStructure{}, ErrInvalidInput
		}
	}
	out := make([]Site, len(sites))
	copy(out, sites)
	return BasicStructure{Lattice: lattice, Sites: out}, nil
}

// IsAtomicOnly reports whether every occupant of every site names a single
// atomic species rather than a multi-atom molecular occupant. CASM's
// PrimSearchData rejects molecular prims outright; this module carries the
// same restriction (spec's Non-goals exclude molecular occupancy).
func (b BasicStructure) IsAtomicOnly() bool {
	// Atomic occupants are single tokens by construction in this module:
	// occupant labels never carry the CASM molecule-name-with-atom-list
	// encoding, so any non-empty label is atomic. Kept as an explicit,
	// named predicate so callers document the assumption at the call site.
	for _, s := range b.Sites {
		for _, occ := range s.AllowedOccupants {
			if occ == "" {
				return false
			}
		}
	}
	return true
}

// VacanciesAllowed reports whether any site permits a vacancy.
func (b BasicStructure) VacanciesAllowed() bool {
	for _, s := range b.Sites {
		if s.AllowsVacancy() {
			return true
		}
	}
	return false
}
