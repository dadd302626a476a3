package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Professional == "" {
		return fmt.Errorf("%w: professional is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Period.IsKnown() {
		return fmt.Errorf("%w: %q", ErrInvalidPeriod, req.Period)
	}

	return nil
}
