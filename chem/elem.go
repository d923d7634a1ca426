/*
Copyright © 2025 the OttoFTAF authors.
This file is part of OttoFTAF.

OttoFTAF is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OttoFTAF is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OttoFTAF.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package chem holds the chemical foundation of the model: nuclide data,
// empirical formula parsing, molar masses, and the composition of
// standard air.
package chem

import "math"

// An Isotope is one nuclide of a chemical element.
type Isotope struct {
	Mass      float64 // atomic mass [u]
	Abundance float64 // terrestrial abundance [%]; NaN for synthetic nuclides
}

// An Element is a chemical element together with its naturally occurring
// and common synthetic isotopes, keyed by mass number.
type Element struct {
	Symbol   string
	Isotopes map[int]Isotope
}

// synthetic marks nuclides with no terrestrial abundance.
var synthetic = math.NaN()

// Elements maps atomic numbers to nuclide data for the elements relevant
// to hydrocarbon combustion and their periodic-table neighbors. Values
// are from the CRC Handbook of Chemistry and Physics, Internet
// Version 2005, CRC Press, Boca Raton, FL.
var Elements = map[int]Element{
	1: {
		Symbol: "H",
		Isotopes: map[int]Isotope{
			1: {Mass: 1.0078250320710, Abundance: 99.988570},
			2: {Mass: 2.01410177784, Abundance: 0.011570},
			3: {Mass: 3.016049277725, Abundance: synthetic},
		},
	},
	2: {
		Symbol: "He",
		Isotopes: map[int]Isotope{
			3: {Mass: 3.01602930979, Abundance: 0.0001373},
			4: {Mass: 4.002603249710, Abundance: 99.9998633},
		},
	},
	3: {
		Symbol: "Li",
		Isotopes: map[int]Isotope{
			6: {Mass: 6.01512235, Abundance: 7.594},
			7: {Mass: 7.01600405, Abundance: 92.414},
		},
	},
	4: {
		Symbol: "Be",
		Isotopes: map[int]Isotope{
			9: {Mass: 9.01218214, Abundance: 100.0},
		},
	},
	5: {
		Symbol: "B",
		Isotopes: map[int]Isotope{
			10: {Mass: 10.01293704, Abundance: 19.97},
			11: {Mass: 11.00930555, Abundance: 80.17},
		},
	},
	6: {
		Symbol: "C",
		Isotopes: map[int]Isotope{
			12: {Mass: 12.0, Abundance: 98.938},
			13: {Mass: 13.003354837810, Abundance: 1.078},
		},
	},
	7: {
		Symbol: "N",
		Isotopes: map[int]Isotope{
			14: {Mass: 14.00307400529, Abundance: 99.6327},
			15: {Mass: 15.00010889849, Abundance: 0.3687},
		},
	},
	8: {
		Symbol: "O",
		Isotopes: map[int]Isotope{
			16: {Mass: 15.994914622115, Abundance: 99.75716},
			17: {Mass: 16.9991315022, Abundance: 0.0381},
			18: {Mass: 17.99916049, Abundance: 0.20514},
		},
	},
	9: {
		Symbol: "F",
		Isotopes: map[int]Isotope{
			19: {Mass: 18.998403207, Abundance: 100.0},
		},
	},
	10: {
		Symbol: "Ne",
		Isotopes: map[int]Isotope{
			20: {Mass: 19.992440175920, Abundance: 90.483},
			21: {Mass: 20.993846744, Abundance: 0.271},
			22: {Mass: 21.9913855123, Abundance: 9.253},
		},
	},
	14: {
		Symbol: "Si",
		Isotopes: map[int]Isotope{
			28: {Mass: 27.976926532519, Abundance: 92.22319},
			29: {Mass: 28.97649470022, Abundance: 4.6858},
			30: {Mass: 29.973770173, Abundance: 3.09211},
		},
	},
	15: {
		Symbol: "P",
		Isotopes: map[int]Isotope{
			31: {Mass: 30.9737616320, Abundance: 100.0},
			32: {Mass: 31.9739072720, Abundance: synthetic},
		},
	},
	16: {
		Symbol: "S",
		Isotopes: map[int]Isotope{
			32: {Mass: 31.9720710015, Abundance: 94.9926},
			33: {Mass: 32.9714587615, Abundance: 0.752},
			34: {Mass: 33.9678669012, Abundance: 4.2524},
			35: {Mass: 34.9690321611, Abundance: synthetic},
			36: {Mass: 35.9670807620, Abundance: 0.011},
		},
	},
	17: {
		Symbol: "Cl",
		Isotopes: map[int]Isotope{
			35: {Mass: 34.968852684, Abundance: 75.7610},
			37: {Mass: 36.965902595, Abundance: 24.2410},
		},
	},
	18: {
		Symbol: "Ar",
		Isotopes: map[int]Isotope{
			36: {Mass: 35.96754510629, Abundance: 0.336530},
			38: {Mass: 37.96273244, Abundance: 0.06325},
			40: {Mass: 39.962383122529, Abundance: 99.600330},
		},
	},
	33: {
		Symbol: "As",
		Isotopes: map[int]Isotope{
			75: {Mass: 74.921596520, Abundance: 100.0},
		},
	},
	34: {
		Symbol: "Se",
		Isotopes: map[int]Isotope{
			74: {Mass: 73.922476418, Abundance: 0.894},
			75: {Mass: 74.922523418, Abundance: synthetic},
			76: {Mass: 75.919213618, Abundance: 9.3729},
			77: {Mass: 76.919914018, Abundance: 7.6316},
			78: {Mass: 77.917309118, Abundance: 23.7728},
			79: {Mass: 78.918499118, Abundance: synthetic},
			80: {Mass: 79.916521321, Abundance: 49.6141},
			82: {Mass: 81.916699422, Abundance: 8.7322},
		},
	},
	35: {
		Symbol: "Br",
		Isotopes: map[int]Isotope{
			79: {Mass: 78.918337122, Abundance: 50.697},
			81: {Mass: 80.916290621, Abundance: 49.317},
		},
	},
	36: {
		Symbol: "Kr",
		Isotopes: map[int]Isotope{
			78: {Mass: 77.920364812, Abundance: 0.3353},
			80: {Mass: 79.916379016, Abundance: 2.28610},
			82: {Mass: 81.913483619, Abundance: 11.59331},
			83: {Mass: 82.9141363, Abundance: 11.50019},
			84: {Mass: 83.9115073, Abundance: 56.98715},
			86: {Mass: 85.9106107311, Abundance: 17.27941},
		},
	},
	52: {
		Symbol: "Te",
		Isotopes: map[int]Isotope{
			120: {Mass: 119.90402010, Abundance: 0.091},
			122: {Mass: 121.903043916, Abundance: 2.5512},
			123: {Mass: 122.904270016, Abundance: 0.893},
			124: {Mass: 123.902817916, Abundance: 4.7414},
			125: {Mass: 124.904430716, Abundance: 7.0715},
			126: {Mass: 125.903311716, Abundance: 18.8425},
			128: {Mass: 127.904463119, Abundance: 31.748},
			130: {Mass: 129.9062224421, Abundance: 34.0862},
		},
	},
	53: {
		Symbol: "I",
		Isotopes: map[int]Isotope{
			123: {Mass: 122.9055894, Abundance: synthetic},
			125: {Mass: 124.904630216, Abundance: synthetic},
			127: {Mass: 126.9044734, Abundance: 100.0},
			129: {Mass: 128.9049883, Abundance: synthetic},
			131: {Mass: 130.906124612, Abundance: synthetic},
		},
	},
	54: {
		Symbol: "Xe",
		Isotopes: map[int]Isotope{
			124: {Mass: 123.905893020, Abundance: 0.09523},
			126: {Mass: 125.9042747, Abundance: 0.08902},
			128: {Mass: 127.903531315, Abundance: 1.91028},
			129: {Mass: 128.90477948, Abundance: 26.400682},
			130: {Mass: 129.90350808, Abundance: 4.071013},
			131: {Mass: 130.905082410, Abundance: 21.232430},
			132: {Mass: 131.904153510, Abundance: 26.908633},
			134: {Mass: 133.90539459, Abundance: 10.435721},
			136: {Mass: 135.9072198, Abundance: 8.857344},
		},
	},
	85: {
		Symbol: "At",
		Isotopes: map[int]Isotope{
			210: {Mass: 209.9871488, Abundance: synthetic},
			211: {Mass: 210.987496330, Abundance: synthetic},
		},
	},
	86: {
		Symbol: "Rn",
		Isotopes: map[int]Isotope{
			211: {Mass: 210.9906017, Abundance: synthetic},
			220: {Mass: 220.011394024, Abundance: synthetic},
			222: {Mass: 222.017577725, Abundance: synthetic},
		},
	},
}
