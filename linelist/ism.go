package linelist

import "github.com/cwbudde/algo-spectro/unit"

// ismTransitions lists the strong UV/optical resonance transitions of the
// builtin ISM list. Rest wavelengths in Angstrom (vacuum), oscillator
// strengths and damping constants from the Morton compilations.
var ismTransitions = []Transition{
	{Name: "HI 1215", Ion: "HI", Wrest: unit.Angstroms(1215.6700), Fval: 0.4164, Gamma: 6.265e8},
	{Name: "HI 1025", Ion: "HI", Wrest: unit.Angstroms(1025.7222), Fval: 0.07912, Gamma: 1.897e8},
	{Name: "HI 972", Ion: "HI", Wrest: unit.Angstroms(972.5367), Fval: 0.02900, Gamma: 8.127e7},
	{Name: "CII 1334", Ion: "CII", Wrest: unit.Angstroms(1334.5323), Fval: 0.1278, Gamma: 2.880e8},
	{Name: "CIV 1548", Ion: "CIV", Wrest: unit.Angstroms(1548.1950), Fval: 0.1908, Gamma: 2.654e8},
	{Name: "CIV 1550", Ion: "CIV", Wrest: unit.Angstroms(1550.7700), Fval: 0.09522, Gamma: 2.641e8},
	{Name: "OI 1302", Ion: "OI", Wrest: unit.Angstroms(1302.1685), Fval: 0.04887, Gamma: 5.650e8},
	{Name: "SiII 1260", Ion: "SiII", Wrest: unit.Angstroms(1260.4221), Fval: 1.007, Gamma: 2.533e9},
	{Name: "SiII 1526", Ion: "SiII", Wrest: unit.Angstroms(1526.7066), Fval: 0.1270, Gamma: 1.130e9},
	{Name: "SiIV 1393", Ion: "SiIV", Wrest: unit.Angstroms(1393.7550), Fval: 0.5280, Gamma: 8.825e8},
	{Name: "SiIV 1402", Ion: "SiIV", Wrest: unit.Angstroms(1402.7700), Fval: 0.2620, Gamma: 8.656e8},
	{Name: "AlII 1670", Ion: "AlII", Wrest: unit.Angstroms(1670.7874), Fval: 1.880, Gamma: 1.410e9},
	{Name: "FeII 2344", Ion: "FeII", Wrest: unit.Angstroms(2344.2140), Fval: 0.1142, Gamma: 2.680e8},
	{Name: "FeII 2382", Ion: "FeII", Wrest: unit.Angstroms(2382.7650), Fval: 0.3200, Gamma: 3.100e8},
	{Name: "FeII 2586", Ion: "FeII", Wrest: unit.Angstroms(2586.6500), Fval: 0.06918, Gamma: 2.720e8},
	{Name: "FeII 2600", Ion: "FeII", Wrest: unit.Angstroms(2600.1729), Fval: 0.2239, Gamma: 2.700e8},
	{Name: "MgII 2796", Ion: "MgII", Wrest: unit.Angstroms(2796.3520), Fval: 0.6123, Gamma: 2.612e8},
	{Name: "MgII 2803", Ion: "MgII", Wrest: unit.Angstroms(2803.5310), Fval: 0.3054, Gamma: 2.592e8},
	{Name: "MgI 2852", Ion: "MgI", Wrest: unit.Angstroms(2852.9640), Fval: 1.810, Gamma: 4.950e8},
}
