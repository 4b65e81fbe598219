package netradiation

// SigmaSB is the Stefan-Boltzmann constant [W/m²/K⁴].
const SigmaSB = 5.670374e-8
