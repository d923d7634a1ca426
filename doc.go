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

// Package ottoftaf models spark-ignition engine cycles with an air-fuel
// working substance and finite-time heat addition. The working gas is
// an ideal mixture of fuel vapor, air, and combustion products whose
// composition evolves with the burned mass fraction; the cycle is
// discretized over crank angle into polytropic and isochoric processes.
//
// Subpackage chem supplies isotopic masses and chemical formula
// handling, and subpackage therm the mixture thermodynamics and
// burned-gas chemistry. This package ties them to the engine geometry
// and solves the cycle.
package ottoftaf

// Version gives this version of OttoFTAF.
const Version = "0.1.0"
