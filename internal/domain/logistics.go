package domain

type Logistics struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Reserved    bool    `json:"reserved"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	EventID     uint    `json:"event_id"`
}

func (l Logistics) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
