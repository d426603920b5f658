package finance

// Значения по умолчанию для калькулятора ипотеки.
const (
	DefaultLoanTermYears = 30
	DefaultAnnualRatePct = 6.5
)

// MortgageEstimate - расчет ипотеки по цене объявления.
type MortgageEstimate struct {
	Price          float64 `json:"price"`
	DownPayment    float64 `json:"downPayment"`
	LoanAmount     float64 `json:"loanAmount"`
	AnnualRatePct  float64 `json:"annualRatePct"`
	Years          int     `json:"years"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
}

// EstimateMortgage считает платеж на сумму price - downPayment.
func EstimateMortgage(price, downPayment, annualRatePct float64, years int) (MortgageEstimate, error) {
	if price <= 0 || downPayment < 0 || downPayment > price {
		return MortgageEstimate{}, ErrInvalidInput
	}
	loan := price - downPayment
	monthly, err := MonthlyPayment(loan, annualRatePct, years)
	if err != nil {
		return MortgageEstimate{}, err
	}

	total := monthly * float64(years*12)
	return MortgageEstimate{
		Price:          price,
		DownPayment:    downPayment,
		LoanAmount:     loan,
		AnnualRatePct:  annualRatePct,
		Years:          years,
		MonthlyPayment: monthly,
		TotalPaid:      total,
		TotalInterest:  total - loan,
	}, nil
}
