package store

import (
	"sync"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

// Store holds the CRM entity collections in memory. Accessors hand out
// copies, so report computations never share slices with the store; the
// activity feed is the only thing that grows after seeding.
type Store struct {
	mu        sync.RWMutex
	leads     []models.Lead
	deals     []models.Deal
	customers []models.Customer
	products  []models.Product
	tasks     []models.Task
	logs      []models.EntityActivityLog
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Lead(nil), s.leads...)
}

func (s *Store) Deals() []models.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Deal(nil), s.deals...)
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

func (s *Store) ActivityLogs() []models.EntityActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.EntityActivityLog(nil), s.logs...)
}

// AppendActivityLog records one entry on the append-only feed. Existing
// entries are never touched.
func (s *Store) AppendActivityLog(entry models.EntityActivityLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
}

// Load replaces the entity collections wholesale. Used by Seed and by tests.
func (s *Store) Load(
	leads []models.Lead,
	deals []models.Deal,
	customers []models.Customer,
	products []models.Product,
	tasks []models.Task,
	logs []models.EntityActivityLog,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = leads
	s.deals = deals
	s.customers = customers
	s.products = products
	s.tasks = tasks
	s.logs = logs
}
