package domain

type Role string

const (
	RoleOrganisateur Role = "ORGANISATEUR"
	RoleIntervenant  Role = "INTERVENANT"
	RoleVisiteur     Role = "VISITEUR"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleOrganisateur, RoleIntervenant, RoleVisiteur:
		return true
	}
	return false
}

type Participant struct {
	ID        uint   `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Role      Role   `json:"role"`
	EventIDs  []uint `json:"event_ids"`
}

// JoinEvent records eventID in the participant's event set.
func (p *Participant) JoinEvent(eventID uint) {
	if eventID == 0 {
		return
	}
	for _, id := range p.EventIDs {
		if id == eventID {
			return
		}
	}
	p.EventIDs = append(p.EventIDs, eventID)
}

// Organizer identifies the participants whose events get their cost
// recalculated.
type Organizer struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Role      Role   `json:"role"`
}

var DefaultOrganizer = Organizer{
	LastName:  "Tounsi",
	FirstName: "Ahmed",
	Role:      RoleOrganisateur,
}
