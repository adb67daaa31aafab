package domain

// Macros holds the four tracked macro-nutrients. For a food they are per one
// unit of quantity; everywhere else they are absolute totals.
type Macros struct {
	Kcal    float64 `json:"kcal"`
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
}

func (m Macros) Add(o Macros) Macros {
	return Macros{
		Kcal:    m.Kcal + o.Kcal,
		Fat:     m.Fat + o.Fat,
		Carbs:   m.Carbs + o.Carbs,
		Protein: m.Protein + o.Protein,
	}
}

func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Kcal:    m.Kcal * factor,
		Fat:     m.Fat * factor,
		Carbs:   m.Carbs * factor,
		Protein: m.Protein * factor,
	}
}

// Divide returns zero macros when divisor is not positive.
func (m Macros) Divide(divisor float64) Macros {
	if divisor <= 0 {
		return Macros{}
	}
	return Macros{
		Kcal:    m.Kcal / divisor,
		Fat:     m.Fat / divisor,
		Carbs:   m.Carbs / divisor,
		Protein: m.Protein / divisor,
	}
}
