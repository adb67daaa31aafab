package domain

var (
	MessageSuccessGetDaySummary     = "day summary retrieved successfully"
	MessageSuccessGetAccountSummary = "account summary retrieved successfully"

	MessageFailedGetDaySummary     = "failed to retrieve day summary"
	MessageFailedGetAccountSummary = "failed to retrieve account summary"
)

type (
	DaySummary struct {
		Date         string                `json:"date"`
		Weight       *WeightResponse       `json:"weight,omitempty"`
		Consumptions []ConsumptionResponse `json:"consumptions"`
		Totals       Macros                `json:"totals"`
		Consumables  []RankedConsumable    `json:"consumables"`
	}

	AccountSummaryRow struct {
		Date     string   `json:"date"`
		WeightID *string  `json:"weight_id,omitempty"`
		Weight   *float64 `json:"weight,omitempty"`
		Kcal     *float64 `json:"kcal,omitempty"`
		Protein  *float64 `json:"protein,omitempty"`
	}
)
