package domain

import "time"

type Event struct {
	ID             uint        `json:"id"`
	Description    string      `json:"description"`
	StartDate      time.Time   `json:"start_date"`
	EndDate        time.Time   `json:"end_date"`
	Cost           float64     `json:"cost"`
	ParticipantIDs []uint      `json:"participant_ids"`
	Logistics      []Logistics `json:"logistics"`
}

func (e *Event) AddParticipant(participantID uint) {
	for _, id := range e.ParticipantIDs {
		if id == participantID {
			return
		}
	}
	e.ParticipantIDs = append(e.ParticipantIDs, participantID)
}

// AddLogistics adds l to the event's logistics set. Items that already have
// an id are matched by id; unsaved items are always appended.
func (e *Event) AddLogistics(l Logistics) {
	if l.ID != 0 {
		for i := range e.Logistics {
			if e.Logistics[i].ID == l.ID {
				e.Logistics[i] = l
				return
			}
		}
	}
	e.Logistics = append(e.Logistics, l)
}

func (e *Event) ReservedLogistics() []Logistics {
	reserved := make([]Logistics, 0, len(e.Logistics))
	for _, l := range e.Logistics {
		if l.Reserved {
			reserved = append(reserved, l)
		}
	}
	return reserved
}

// ReservedCost sums UnitPrice * Quantity over the reserved logistics.
func (e *Event) ReservedCost() float64 {
	var total float64
	for _, l := range e.ReservedLogistics() {
		total += l.Total()
	}
	return total
}
