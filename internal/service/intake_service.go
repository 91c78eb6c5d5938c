package service

import (
	"carshield-admin-api/internal/wizard"
)

// IntakeService owns the live wizard sessions and the collaborators each new
// wizard is wired to: the duplicate lookup and the commit stores.
type IntakeService struct {
	sessions *wizard.Store
	lookup   wizard.ClientLookup
	clients  wizard.ClientStore
	orders   wizard.OrderStore
}

func NewIntakeService(lookup wizard.ClientLookup, clients wizard.ClientStore, orders wizard.OrderStore) *IntakeService {
	return &IntakeService{
		sessions: wizard.NewStore(),
		lookup:   lookup,
		clients:  clients,
		orders:   orders,
	}
}

// Start opens a new intake session.
func (s *IntakeService) Start() *wizard.Session {
	return s.sessions.Create(s.lookup, s.clients, s.orders)
}

// Session returns a live session by id.
func (s *IntakeService) Session(id string) (*wizard.Session, bool) {
	return s.sessions.Get(id)
}

// Discard drops a session, forgetting its state entirely. Called on explicit
// discard and after a successful final save.
func (s *IntakeService) Discard(id string) {
	s.sessions.Delete(id)
}

// Active reports the number of open sessions.
func (s *IntakeService) Active() int {
	return s.sessions.Len()
}
