package domain

var (
	MessageSuccessGetWeights   = "weights retrieved successfully"
	MessageSuccessGetWeight    = "weight retrieved successfully"
	MessageSuccessCreateWeight = "weight recorded successfully"
	MessageSuccessUpdateWeight = "weight updated successfully"
	MessageSuccessDeleteWeight = "weight deleted successfully"

	MessageFailedGetWeights   = "failed to retrieve weights"
	MessageFailedGetWeight    = "failed to retrieve weight"
	MessageFailedCreateWeight = "failed to record weight"
	MessageFailedUpdateWeight = "failed to update weight"
	MessageFailedDeleteWeight = "failed to delete weight"

	ErrWeightNotFound  = NewError(ErrNotFound, "weight not found")
	ErrWeightForbidden = NewError(ErrForbidden, "weight belongs to another user")
)

type (
	WeightRequest struct {
		Weight     float64 `json:"weight" validate:"gt=0"`
		MeasuredAt string  `json:"measured_at" validate:"required,datetime=2006-01-02"`
	}

	WeightResponse struct {
		ID         string  `json:"id"`
		UserID     string  `json:"user_id"`
		Weight     float64 `json:"weight"`
		MeasuredAt string  `json:"measured_at"`
	}
)
