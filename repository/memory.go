package repository

import (
	"context"
	"sync"

	"cardoctor-backend/models"

	"github.com/google/uuid"
)

// MemoryStore is a mutex-guarded in-memory backing store. It implements
// ServiceRepository directly; MemoryOrders wraps it for the order side.
type MemoryStore struct {
	mu       sync.RWMutex
	services map[uuid.UUID]models.Service
	orders   map[uuid.UUID]models.ServiceOrder
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		services: make(map[uuid.UUID]models.Service),
		orders:   make(map[uuid.UUID]models.ServiceOrder),
	}
}

var _ ServiceRepository = (*MemoryStore)(nil)

// OrderRepository is implemented by the MemoryOrders wrapper below.

func (m *MemoryStore) List(ctx context.Context) ([]models.ServiceSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.ServiceSummary, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, models.ServiceSummary{
			ID:        s.ID,
			ServiceID: s.ServiceID,
			Title:     s.Title,
			Price:     s.Price,
			Img:       s.Img,
		})
	}
	return out, nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &models.ServiceDetail{Title: s.Title, Price: s.Price, Img: s.Img}, nil
}

func (m *MemoryStore) FindByFingerprint(ctx context.Context, serviceID, title string, price float64) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.services {
		if s.ServiceID == serviceID && s.Title == title && s.Price == price {
			cp := s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Create(ctx context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.services[s.ID] = *s
	return nil
}

// MemoryOrders exposes the order half of the store.
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) ListByEmail(ctx context.Context, email string) ([]models.ServiceOrder, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()
	out := make([]models.ServiceOrder, 0)
	for _, o := range mo.store.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (mo *MemoryOrders) Create(ctx context.Context, o *models.ServiceOrder) error {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	mo.store.orders[o.ID] = *o
	return nil
}

func (mo *MemoryOrders) SetStatus(ctx context.Context, id uuid.UUID, status string) (models.UpdateResult, error) {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	o, ok := mo.store.orders[id]
	if !ok {
		return models.UpdateResult{}, nil
	}
	o.Status = status
	mo.store.orders[id] = o
	return models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (mo *MemoryOrders) Delete(ctx context.Context, id uuid.UUID) (models.DeleteResult, error) {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	if _, ok := mo.store.orders[id]; !ok {
		return models.DeleteResult{DeletedCount: 0}, nil
	}
	delete(mo.store.orders, id)
	return models.DeleteResult{DeletedCount: 1}, nil
}

func (mo *MemoryOrders) CountByStatus(ctx context.Context, status string) (int64, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()
	var count int64
	for _, o := range mo.store.orders {
		if o.Status == status {
			count++
		}
	}
	return count, nil
}
