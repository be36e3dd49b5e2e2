package salary

import (
	"github.com/tidwall/gjson"

	"github.com/fr4nk3nst1ner/salarystats/internal/models"
)

const (
	// DefaultGrossToNet is the share of a gross salary left after income tax
	DefaultGrossToNet = 0.87

	HeadHunterCurrency = "RUR"
	SuperJobCurrency   = "rub"
)

// Normalizer turns a provider vacancy into a single salary estimate.
// The second result is false when the vacancy carries no usable salary.
type Normalizer interface {
	Normalize(v models.Vacancy) (int, bool)
}

// HeadHunterNormalizer reads the nested "salary" object of HeadHunter vacancies.
//
// Any numeric bound counts, so a zero "from" is a real lower bound here while
// SuperJobNormalizer treats zero as unset.
// TODO: align zero handling across providers once it is settled whether HH
// ever sends 0 for an unset bound.
type HeadHunterNormalizer struct {
	Currency   string
	GrossToNet float64
}

// NewHeadHunterNormalizer returns a normalizer for RUR salaries with the
// default gross-to-net rate
func NewHeadHunterNormalizer() HeadHunterNormalizer {
	return HeadHunterNormalizer{
		Currency:   HeadHunterCurrency,
		GrossToNet: DefaultGrossToNet,
	}
}

func (n HeadHunterNormalizer) Normalize(v models.Vacancy) (int, bool) {
	salary := v.Get("salary")
	if !salary.IsObject() {
		return 0, false
	}
	if salary.Get("currency").String() != n.Currency {
		return 0, false
	}

	rate := 1.0
	if salary.Get("gross").Bool() {
		rate = n.GrossToNet
	}

	from := numericBound(salary.Get("from"), rate)
	to := numericBound(salary.Get("to"), rate)

	return Estimate(from, to)
}

// SuperJobNormalizer reads the flat payment_from/payment_to fields of
// SuperJob vacancies. SuperJob sends 0 for an unset bound.
type SuperJobNormalizer struct {
	Currency string
}

// NewSuperJobNormalizer returns a normalizer for rub salaries
func NewSuperJobNormalizer() SuperJobNormalizer {
	return SuperJobNormalizer{Currency: SuperJobCurrency}
}

func (n SuperJobNormalizer) Normalize(v models.Vacancy) (int, bool) {
	if v.Get("currency").String() != n.Currency {
		return 0, false
	}

	from := nonZeroBound(v.Get("payment_from"))
	to := nonZeroBound(v.Get("payment_to"))

	return Estimate(from, to)
}

// numericBound scales a numeric bound and truncates it to an int.
// Anything that is not a JSON number counts as absent.
func numericBound(value gjson.Result, rate float64) *int {
	if value.Type != gjson.Number {
		return nil
	}
	bound := int(value.Float() * rate)
	return &bound
}

func nonZeroBound(value gjson.Result) *int {
	if value.Type != gjson.Number {
		return nil
	}
	bound := int(value.Int())
	if bound == 0 {
		return nil
	}
	return &bound
}

var (
	_ Normalizer = HeadHunterNormalizer{}
	_ Normalizer = SuperJobNormalizer{}
)
