package service

const (
	// DefaultScheduleMonths shows only the first year of the schedule.
	DefaultScheduleMonths = 12

	StampDutyPropertyRate = 0.008 // Imposto de Selo sobre a aquisição
	StampDutyMortgageRate = 0.006 // Imposto de Selo sobre o crédito
)
