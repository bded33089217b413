package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"harvesthub/db"
	"harvesthub/models"
)

// MockStorage реализует StorageInterface в памяти с теми же условными
// переходами, что и PostgreSQL-хранилище.
type MockStorage struct {
	mu       sync.Mutex
	users    map[string]models.User
	listings map[int]models.Listing
	profiles map[string]models.NGOProfile
	requests map[int]models.PurchaseRequest
	nextID   int
	clock    time.Time

	// err, если задан, возвращается из всех методов
	err error
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		users:    map[string]models.User{},
		listings: map[int]models.Listing{},
		profiles: map[string]models.NGOProfile{},
		requests: map[int]models.PurchaseRequest{},
		clock:    time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *MockStorage) id() int {
	m.nextID++
	return m.nextID
}

func (m *MockStorage) Ping(ctx context.Context) error { return m.err }

func (m *MockStorage) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[u.Username]; ok {
		return db.ErrDuplicateUsername
	}
	m.users[u.Username] = *u
	return nil
}

func (m *MockStorage) GetUser(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[username]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &u, nil
}

func (m *MockStorage) CreateListing(ctx context.Context, l *models.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	l.ID = m.id()
	l.Status = models.StatusAvailable
	l.ClaimedBy = nil
	m.listings[l.ID] = *l
	return nil
}

func (m *MockStorage) GetListing(ctx context.Context, id int) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	l, ok := m.listings[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &l, nil
}

func (m *MockStorage) filter(keep func(models.Listing) bool) ([]models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Listing{}
	for _, l := range m.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockStorage) GetListings(ctx context.Context) ([]models.Listing, error) {
	return m.filter(func(models.Listing) bool { return true })
}

func (m *MockStorage) GetFarmerListings(ctx context.Context, farmerID string) ([]models.Listing, error) {
	return m.filter(func(l models.Listing) bool { return l.FarmerID == farmerID })
}

func (m *MockStorage) GetAvailableListings(ctx context.Context, types ...models.ListingType) ([]models.Listing, error) {
	return m.filter(func(l models.Listing) bool {
		if l.Status != models.StatusAvailable {
			return false
		}
		for _, t := range types {
			if l.Type == t {
				return true
			}
		}
		return false
	})
}

func (m *MockStorage) GetClaimedListings(ctx context.Context, ngoID string) ([]models.Listing, error) {
	return m.filter(func(l models.Listing) bool {
		return l.Status == models.StatusClaimed && l.ClaimedBy != nil && *l.ClaimedBy == ngoID
	})
}

func (m *MockStorage) UpdateListing(ctx context.Context, l *models.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	cur, ok := m.listings[l.ID]
	if !ok || !cur.Status.Editable() {
		return db.ErrNotFoundOrLocked
	}
	cur.Title, cur.Quantity, cur.Type = l.Title, l.Quantity, l.Type
	cur.AvailableDate, cur.Price = l.AvailableDate, l.Price
	m.listings[l.ID] = cur
	*l = cur
	return nil
}

func (m *MockStorage) DeleteListing(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.listings[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.listings, id)
	return nil
}

func (m *MockStorage) ClaimListing(ctx context.Context, id int, claimant string) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	l, ok := m.listings[id]
	if !ok {
		return nil, db.ErrNotEligible
	}
	next, err := l.Status.Claim(l.Type)
	if err != nil {
		return nil, db.ErrNotEligible
	}
	l.Status = next
	l.ClaimedBy = &claimant
	m.listings[id] = l
	return &l, nil
}

func (m *MockStorage) UpsertNGOProfile(ctx context.Context, p *models.NGOProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.profiles[p.NGOID] = *p
	return nil
}

func (m *MockStorage) GetNGOProfile(ctx context.Context, ngoID string) (*models.NGOProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[ngoID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &p, nil
}

func (m *MockStorage) CreatePurchaseRequest(ctx context.Context, r *models.PurchaseRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	l, ok := m.listings[r.ListingID]
	if !ok || l.Status != models.StatusAvailable {
		return db.ErrListingUnavailable
	}
	m.clock = m.clock.Add(time.Minute)
	r.ID = m.id()
	r.FarmerID = l.FarmerID
	r.CropTitle = l.Title
	r.Quantity = l.Quantity
	r.Price = l.Price
	r.Status = models.RequestPending
	r.CreatedAt = m.clock
	m.requests[r.ID] = *r
	return nil
}

func (m *MockStorage) requestsWhere(keep func(models.PurchaseRequest) bool) ([]models.PurchaseRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.PurchaseRequest{}
	for _, r := range m.requests {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MockStorage) GetFarmerPurchaseRequests(ctx context.Context, farmerID string) ([]models.PurchaseRequest, error) {
	return m.requestsWhere(func(r models.PurchaseRequest) bool { return r.FarmerID == farmerID })
}

func (m *MockStorage) GetBuyerPurchaseRequests(ctx context.Context, buyerID string) ([]models.PurchaseRequest, error) {
	return m.requestsWhere(func(r models.PurchaseRequest) bool { return r.BuyerID == buyerID })
}

func (m *MockStorage) ResolvePurchaseRequest(ctx context.Context, id int, decision models.RequestStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if !decision.IsDecision() {
		return db.ErrInvalidDecision
	}
	r, ok := m.requests[id]
	if !ok {
		return db.ErrNotFound
	}
	next, err := r.Status.Resolve(decision)
	if err != nil {
		return db.ErrAlreadyResolved
	}
	if next == models.RequestApproved {
		l, ok := m.listings[r.ListingID]
		if !ok {
			return db.ErrListingUnavailable
		}
		sold, err := l.Status.Sell()
		if err != nil {
			return db.ErrListingUnavailable
		}
		l.Status = sold
		m.listings[l.ID] = l
	}
	r.Status = next
	m.requests[id] = r
	return nil
}
