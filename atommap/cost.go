// Package atommap: per-pair atom mapping cost function mu(d, t_atom,
// S_site, infinity), grounded on SearchData.cc's make_atom_mapping_cost.

package atommap

import (
	"math"

	"github.com/katalvlaran/xtalmap/xtal"
)

// Forbidden is the sentinel cost for a disallowed site/atom pairing.
var Forbidden = math.Inf(1)

// Cost returns the assignment cost of placing an occupant at a site given
// the minimum-image displacement d between them.
//
//   - If isVacancy: 0 if site allows a vacancy, else Forbidden.
//   - Else if site does not allow atomSpecies: Forbidden.
//   - Else: the squared displacement norm.
func Cost(d xtal.Vec3, isVacancy bool, atomSpecies string, site xtal.Site) float64 {
	if isVacancy {
		if site.AllowsVacancy() {
			return 0
		}
		return Forbidden
	}
	if !site.AllowsSpecies(atomSpecies) {
		return Forbidden
	}
	return d.NormSquared()
}
