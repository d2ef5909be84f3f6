package store

import (
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
)

// Store owns the three entity collections: users, hazard reports and
// social posts. All state lives in process memory, is seeded once at
// startup and is lost on exit. A single RWMutex guards the maps so that
// every operation is observed either completely or not at all; there are
// no transactions beyond that.
//
// The clock is injected so creation timestamps are deterministic in tests.
type Store struct {
	mu         sync.RWMutex
	clock      clockwork.Clock
	bcryptCost int

	users   map[string]model.User
	reports map[string]reportEntry
	posts   map[string]postEntry

	// seq increments on every report/post insert and breaks ordering ties
	// between records created within the same clock tick.
	seq uint64
}

// reportEntry pairs a report with its insertion sequence number.
type reportEntry struct {
	report model.HazardReport
	seq    uint64
}

// postEntry pairs a social post with its insertion sequence number.
type postEntry struct {
	post model.SocialPost
	seq  uint64
}

// New returns an empty Store. Seed data is loaded separately by the
// caller (see Seed) so tests can start from a clean state.
func New(clock clockwork.Clock, bcryptCost int) *Store {
	return &Store{
		clock:      clock,
		bcryptCost: bcryptCost,
		users:      make(map[string]model.User),
		reports:    make(map[string]reportEntry),
		posts:      make(map[string]postEntry),
	}
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// cloneReport returns a copy whose volunteer slice does not alias store
// state, so callers cannot mutate a stored report through the return value.
func cloneReport(r model.HazardReport) model.HazardReport {
	if r.AssignedVolunteers != nil {
		vols := make([]string, len(r.AssignedVolunteers))
		copy(vols, r.AssignedVolunteers)
		r.AssignedVolunteers = vols
	}
	return r
}
