// Package memory implementa los puertos de persistencia sobre estado en
// proceso. Es el backend de los tests y del modo STORAGE_DRIVER=memory:
// mismos contratos que los adaptadores postgres, sin servicios externos.
package memory

import (
	"sort"
	"sync"

	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
)

// Store estado compartido de los repositorios en memoria.
//
// sales y purchases se mantienen más-reciente-primero (se insertan al
// frente), igual que el orden de los historiales en pantalla.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex // serializa transacciones del TxRunner
	products  map[string]*entity.Product
	sales     []*entity.Sale
	purchases []*entity.Purchase
	users     map[string]*entity.User
	saleSeq   int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		users:    make(map[string]*entity.User),
	}
}

// snapshot copia profunda del estado mutable (para rollback del TxRunner).
type snapshot struct {
	products  map[string]*entity.Product
	sales     []*entity.Sale
	purchases []*entity.Purchase
	saleSeq   int64
}

func (s *Store) takeSnapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := &snapshot{
		products: make(map[string]*entity.Product, len(s.products)),
		saleSeq:  s.saleSeq,
	}
	for id, p := range s.products {
		snap.products[id] = copyProduct(p)
	}
	snap.sales = make([]*entity.Sale, len(s.sales))
	for i, sale := range s.sales {
		snap.sales[i] = copySale(sale)
	}
	snap.purchases = make([]*entity.Purchase, len(s.purchases))
	for i, purchase := range s.purchases {
		snap.purchases[i] = copyPurchase(purchase)
	}
	return snap
}

func (s *Store) restore(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.sales = snap.sales
	s.purchases = snap.purchases
	s.saleSeq = snap.saleSeq
}

func copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

func copySale(s *entity.Sale) *entity.Sale {
	cp := *s
	cp.Items = make([]entity.SaleItem, len(s.Items))
	copy(cp.Items, s.Items)
	return &cp
}

func copyPurchase(p *entity.Purchase) *entity.Purchase {
	cp := *p
	return &cp
}

func copyUser(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func sortProductsByName(products []*entity.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
}

// paginate recorta una lista ya ordenada según limit/offset.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
