package update_custom_slots

// UpdateCustomSlotsRequest HTTP request model
type UpdateCustomSlotsRequest struct {
	Slots []string `json:"slots"` // ["08:00", "12:30"]; пустой список возвращает стандартную сетку
}

// CustomSlotsResponse сохранённый список
type CustomSlotsResponse struct {
	Date         string   `json:"date"`
	Professional string   `json:"professional"`
	Slots        []string `json:"slots"`
}
