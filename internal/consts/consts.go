package consts

const (
	CHARGE    = 1.6021918e-19 // Elementary charge (C)
	BOLTZMANN = 1.3806226e-23 // Boltzmann constant (J/K)
	KELVIN    = 273.15        // Kelvin temperature (K)

	EPS0  = 8.854214871e-12 // Vacuum permittivity (F/m)
	EPSSI = 11.7 * EPS0     // Silicon permittivity (F/m)
	EPSOX = 3.9 * EPS0      // Silicon dioxide permittivity (F/m)
)
