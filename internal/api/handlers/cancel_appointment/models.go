package cancel_appointment

// CancelResponse HTTP ответ на отмену записи
type CancelResponse struct {
	ID        int64 `json:"id"`
	Cancelada bool  `json:"cancelada"`
}
