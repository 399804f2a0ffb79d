package request

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/esprit/eventsproject/internal/domain"
)

const DateLayout = "2006-01-02"

var (
	errEndBeforeStart = errors.New("end_date must not be before start_date")
	errZeroID         = errors.New("ids must be positive")
	errPartialDates   = errors.New("start_date and end_date must be given together")
	roles             = []interface{}{
		string(domain.RoleOrganisateur),
		string(domain.RoleIntervenant),
		string(domain.RoleVisiteur),
	}
)

type AddParticipantRequest struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Role      string `json:"role" enums:"ORGANISATEUR,INTERVENANT,VISITEUR"`
}

func (req *AddParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Role, validation.Required, validation.In(roles...)),
	)
}

func (req *AddParticipantRequest) ToDomain() domain.Participant {
	return domain.Participant{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Role:      domain.Role(req.Role),
	}
}

// EventRequest creates an event, or updates the stored one when ID is set.
// With an ID, description and dates are optional and only given fields
// replace the stored ones.
type EventRequest struct {
	ID             uint   `json:"id"`
	Description    string `json:"description"`
	StartDate      string `json:"start_date" format:"YYYY-MM-DD"`
	EndDate        string `json:"end_date" format:"YYYY-MM-DD"`
	ParticipantIDs []uint `json:"participant_ids"`
}

func (req *EventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Description, req.requiredOnCreate(validation.Length(1, 255))...),
		validation.Field(&req.StartDate, req.requiredOnCreate(validation.Date(DateLayout))...),
		validation.Field(&req.EndDate, req.requiredOnCreate(validation.Date(DateLayout))...),
		validation.Field(&req.ParticipantIDs, validation.By(nonZeroIDs)),
	)
	if err != nil {
		return err
	}

	if (req.StartDate == "") != (req.EndDate == "") {
		return errPartialDates
	}
	if req.StartDate == "" {
		return nil
	}

	start, end, _ := parseRange(req.StartDate, req.EndDate)
	if end.Before(start) {
		return errEndBeforeStart
	}

	return nil
}

func (req *EventRequest) requiredOnCreate(rules ...validation.Rule) []validation.Rule {
	if req.ID != 0 {
		return rules
	}

	return append([]validation.Rule{validation.Required}, rules...)
}

func nonZeroIDs(value interface{}) error {
	ids, _ := value.([]uint)
	for _, id := range ids {
		if id == 0 {
			return errZeroID
		}
	}

	return nil
}

// ToDomain must be called after Validate.
func (req *EventRequest) ToDomain() domain.Event {
	event := domain.Event{
		ID:          req.ID,
		Description: req.Description,
	}
	if req.StartDate != "" {
		event.StartDate, event.EndDate, _ = parseRange(req.StartDate, req.EndDate)
	}

	for _, id := range req.ParticipantIDs {
		event.AddParticipant(id)
	}

	return event
}

type LogisticsRequest struct {
	Description string  `json:"description"`
	Reserved    bool    `json:"reserved"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// Validate only checks the description. Prices and quantities are accepted
// as given, negative values included.
func (req *LogisticsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Description, validation.Required, validation.Length(1, 255)),
	)
}

func (req *LogisticsRequest) ToDomain() domain.Logistics {
	return domain.Logistics{
		Description: req.Description,
		Reserved:    req.Reserved,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
	}
}

type DateRangeQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

func (q *DateRangeQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Start, validation.Required, validation.Date(DateLayout)),
		validation.Field(&q.End, validation.Required, validation.Date(DateLayout)),
	)
}

func (q *DateRangeQuery) Range() (time.Time, time.Time, error) {
	return parseRange(q.Start, q.End)
}

type CalculateCostRequest struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Role      string `json:"role" enums:"ORGANISATEUR,INTERVENANT,VISITEUR"`
}

func (req *CalculateCostRequest) IsEmpty() bool {
	return req.LastName == "" && req.FirstName == "" && req.Role == ""
}

func (req *CalculateCostRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.LastName, validation.Required),
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In(roles...)),
	)
}

func (req *CalculateCostRequest) ToDomain() domain.Organizer {
	return domain.Organizer{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Role:      domain.Role(req.Role),
	}
}

func parseRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}

	end, err := time.Parse(DateLayout, endValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}

	return start, end, nil
}
