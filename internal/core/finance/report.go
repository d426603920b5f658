package finance

// PropertyReportInput - параметры калькулятора для конкретного объявления.
// Нулевые Years и nil AnnualRatePct заменяются значениями по умолчанию.
type PropertyReportInput struct {
	DownPayment     float64
	AnnualRatePct   *float64
	Years           int
	MonthlyRent     *float64
	MonthlyExpenses float64
}

// PropertyReport - ипотека плюс, если известна аренда, доходность и ROI.
type PropertyReport struct {
	Mortgage    MortgageEstimate `json:"mortgage"`
	RentalYield *float64         `json:"rentalYield"`
	ROI         *float64         `json:"roi"`
}

func BuildPropertyReport(price float64, in PropertyReportInput) (PropertyReport, error) {
	rate := DefaultAnnualRatePct
	if in.AnnualRatePct != nil {
		rate = *in.AnnualRatePct
	}
	years := in.Years
	if years == 0 {
		years = DefaultLoanTermYears
	}

	mortgage, err := EstimateMortgage(price, in.DownPayment, rate, years)
	if err != nil {
		return PropertyReport{}, err
	}
	report := PropertyReport{Mortgage: mortgage}

	if in.MonthlyRent != nil {
		yield, err := RentalYield(*in.MonthlyRent, price)
		if err != nil {
			return PropertyReport{}, err
		}
		roi, err := ROI(*in.MonthlyRent, price, in.MonthlyExpenses)
		if err != nil {
			return PropertyReport{}, err
		}
		report.RentalYield = &yield
		report.ROI = &roi
	}
	return report, nil
}
