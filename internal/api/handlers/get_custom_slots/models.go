package get_custom_slots

// CustomSlotsResponse ручной список времен профессионала на дату
type CustomSlotsResponse struct {
	Date         string   `json:"date"`
	Professional string   `json:"professional"`
	Slots        []string `json:"slots"`
}
