/*
 * atomicdata.go, part of mdtools.
 *
 * Copyright 2023 The mdtools developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package md

// symbolMass holds the masses, in Daltons, of the most commonly found
// chemical elements, indexed by their symbols.
var symbolMass = map[string]float64{
	"H":  1.008,
	"D":  2.014,
	"He": 4.002602,
	"Li": 6.94,
	"Be": 9.0121831,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998403163,
	"Ne": 20.1797,
	"Na": 22.98976928,
	"Mg": 24.305,
	"Al": 26.9815385,
	"Si": 28.085,
	"P":  30.973761998,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.0983,
	"Ca": 40.078,
	"Mn": 54.938044,
	"Fe": 55.845,
	"Co": 58.933194,
	"Ni": 58.6934,
	"Cu": 63.546,
	"Zn": 65.38,
	"Se": 78.971,
	"Br": 79.904,
	"Mo": 95.95,
	"Ru": 101.07,
	"Rh": 102.9055,
	"Pd": 106.42,
	"Ag": 107.8682,
	"Cd": 112.414,
	"I":  126.90447,
	"Pt": 195.084,
	"Au": 196.966569,
	"Hg": 200.592,
}

// SymbolMass returns the mass of the element with the given symbol,
// and whether the symbol is known.
func SymbolMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}
