package memory

import (
	"context"
	"sync"

	"github.com/coffee-urbantech/pos-api/internal/application/sales"
	"github.com/coffee-urbantech/pos-api/internal/domain/cart"
)

// CartStore guarda el carrito en curso de cada usuario en un mapa en
// proceso. Es el backend por defecto; el de redis se usa cuando hay varias
// réplicas del API.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

// NewCartStore crea un store de carritos vacío.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*cart.Cart)}
}

var _ sales.CartStore = (*CartStore)(nil)

// Get devuelve una copia del carrito del usuario; uno vacío si no existe.
func (s *CartStore) Get(ctx context.Context, userID string) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[userID]
	if !ok {
		return cart.New(), nil
	}
	return copyCart(c), nil
}

// Update aplica fn al carrito del usuario con el lock de escritura tomado:
// el leer-modificar-escribir completo es atómico frente a otras peticiones
// del mismo usuario. Si fn falla no se persiste nada.
func (s *CartStore) Update(ctx context.Context, userID string, fn func(c *cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := cart.New()
	if cur, ok := s.carts[userID]; ok {
		c = copyCart(cur)
	}
	if err := fn(c); err != nil {
		return err
	}
	s.carts[userID] = c
	return nil
}

func (s *CartStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}

func copyCart(c *cart.Cart) *cart.Cart {
	cp := cart.New()
	cp.Items = make([]cart.Item, len(c.Items))
	copy(cp.Items, c.Items)
	return cp
}
