package service

const (
	// Newton-Raphson para la TIR
	IRRInitialGuess  = 0.10
	IRRMaxIterations = 100
	IRRTolerance     = 0.0001
	IRRMinRate       = -0.99 // evita (1+rate) <= 0
	IRRMaxRate       = 9.99

	// Políticas del rent roll
	LowOccupancyThreshold = 50.0 // porcentaje
	HighRentMultiplier    = 3.0
	LowRentMultiplier     = 0.3
	RentTotalTolerance    = 10.0 // unidades monetarias

	// Umbrales de referencia para quien etiquete la inversión
	MinHealthyDSCR   = 1.25
	MaxPrudentLTV    = 80.0
	TargetCapRate    = 5.0
	TargetCashOnCash = 8.0

	MonthsPerYear = 12
)
