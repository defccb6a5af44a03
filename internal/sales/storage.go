package sales

import "sync"

// Storage is the main interface for our sales storage layer.
type Storage interface {
	Set(sale *Sale) error
	Read(id string) (*Sale, error)
	GetAll() ([]*Sale, error)
}

// LocalStorage provides an in-memory implementation for storing sales.
// It is safe for concurrent use. Sales are copied on the way in and out,
// so callers never hold a reference to a stored record.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Sale
}

// NewLocalStorage instantiates a new LocalStorage for sales with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string]*Sale{},
	}
}

// Set inserts or replaces a sale.
// Returns ErrEmptyID if the sale has an empty ID.
func (l *LocalStorage) Set(sale *Sale) error {
	if sale.ID == "" {
		return ErrEmptyID
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[sale.ID] = sale.clone()
	return nil
}

// Read retrieves a sale from the local storage by ID.
// Returns ErrNotFound if the sale is not found.
func (l *LocalStorage) Read(id string) (*Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.clone(), nil
}

// GetAll retrieves all sales in no particular order.
func (l *LocalStorage) GetAll() ([]*Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sales := make([]*Sale, 0, len(l.m))
	for _, s := range l.m {
		sales = append(sales, s.clone())
	}
	return sales, nil
}
