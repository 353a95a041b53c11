package update_closing_dates

// UpdateClosingDatesRequest HTTP request body
type UpdateClosingDatesRequest struct {
	ClosingDates []string `json:"fechasCierre"`
}

// UpdateClosingDatesResponse HTTP ответ после обновления
type UpdateClosingDatesResponse struct {
	Slug         string   `json:"slug"`
	ClosingDates []string `json:"fechasCierre"`
}
