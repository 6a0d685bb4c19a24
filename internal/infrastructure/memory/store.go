// Package memory implementa los puertos de persistencia en memoria de proceso.
// Se usa con DB_DRIVER=memory (demos, desarrollo sin PostgreSQL) y en los tests de casos de uso.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/billing"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

var _ billing.InvoiceTxRunner = (*Store)(nil)

// Store estado compartido por todos los repos. Una transacción toma el lock completo,
// así que hay un único escritor a la vez.
type Store struct {
	mu  sync.Mutex
	loc *time.Location

	products map[int64]entity.Product
	invoices map[int64]entity.Invoice
	lines    map[int64]entity.LineItem
	users    map[string]entity.User

	nextProduct int64
	nextInvoice int64
	nextLine    int64
}

// NewStore crea un almacén vacío; loc es la zona en la que DateStats agrupa por día.
func NewStore(loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		loc:      loc,
		products: map[int64]entity.Product{},
		invoices: map[int64]entity.Invoice{},
		lines:    map[int64]entity.LineItem{},
		users:    map[string]entity.User{},
	}
}

// handle acceso a la store; locked indica que el llamador (una tx) ya tiene el lock.
type handle struct {
	s      *Store
	locked bool
}

func (h handle) lock() func() {
	if h.locked {
		return func() {}
	}
	h.s.mu.Lock()
	return h.s.mu.Unlock
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{h: handle{s: s}} }

// Invoices repositorio de cabeceras fuera de transacción.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{h: handle{s: s}} }

// LineItems repositorio de líneas fuera de transacción.
func (s *Store) LineItems() *LineItemRepo { return &LineItemRepo{h: handle{s: s}} }

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{h: handle{s: s}} }

// Reports consultas de reportes.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{h: handle{s: s}} }

// RunInvoice ejecuta fn con el lock tomado; si fn falla se restaura la foto previa.
func (s *Store) RunInvoice(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	lineRepo repository.LineItemRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	h := handle{s: s, locked: true}
	if err := fn(&InvoiceRepo{h: h}, &ProductRepo{h: h}, &LineItemRepo{h: h}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	products map[int64]entity.Product
	invoices map[int64]entity.Invoice
	lines    map[int64]entity.LineItem
	users    map[string]entity.User
	seq      [3]int64
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		products: cloneMap(s.products),
		invoices: cloneMap(s.invoices),
		lines:    cloneMap(s.lines),
		users:    cloneMap(s.users),
		seq:      [3]int64{s.nextProduct, s.nextInvoice, s.nextLine},
	}
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.invoices = snap.invoices
	s.lines = snap.lines
	s.users = snap.users
	s.nextProduct, s.nextInvoice, s.nextLine = snap.seq[0], snap.seq[1], snap.seq[2]
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
