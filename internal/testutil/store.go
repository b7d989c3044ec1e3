// Package testutil dobles en memoria de los puertos del motor de fulfillment para pruebas de
// casos de uso y handlers.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

var (
	_ repository.WorkflowRepository       = (*WorkflowRepo)(nil)
	_ repository.ShelfLocationRepository  = (*ShelfRepo)(nil)
	_ repository.ImageIssueRepository     = (*ImageIssueRepo)(nil)
	_ repository.DispatchRecordRepository = (*DispatchRepo)(nil)
	_ fulfillment.TxRunner                = (*Store)(nil)
)

// Store almacén local en memoria. Run serializa las transacciones y deshace los cambios si fn falla.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	d    data

	// FailDispatchCreate, si no es nil, lo devuelve el alta de irsaliyes (fallo local después del ERP).
	FailDispatchCreate error
}

type data struct {
	workflows map[string]*entity.OrderWorkflow
	items     map[string][]*entity.WorkflowItem // workflowID → ítems en orden de alta
	shelves   map[string]entity.ShelfLocation
	issues    []*entity.ImageIssueReport
	records   []*entity.DispatchRecord
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{d: data{
		workflows: map[string]*entity.OrderWorkflow{},
		items:     map[string][]*entity.WorkflowItem{},
		shelves:   map[string]entity.ShelfLocation{},
	}}
}

func (s *Store) Workflows() *WorkflowRepo    { return &WorkflowRepo{s: s} }
func (s *Store) Shelves() *ShelfRepo          { return &ShelfRepo{s: s} }
func (s *Store) ImageIssues() *ImageIssueRepo { return &ImageIssueRepo{s: s} }
func (s *Store) Dispatches() *DispatchRepo    { return &DispatchRepo{s: s} }

// Run ejecuta fn con repos sobre el propio almacén; si fn falla se restaura la foto previa.
func (s *Store) Run(ctx context.Context, fn func(
	workflows repository.WorkflowRepository,
	shelves repository.ShelfLocationRepository,
	dispatches repository.DispatchRecordRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snap := s.d.clone()
	s.mu.Unlock()

	if err := fn(s.Workflows(), s.Shelves(), s.Dispatches()); err != nil {
		s.mu.Lock()
		s.d = snap
		s.mu.Unlock()
		return err
	}
	return nil
}

// ── workflows ────────────────────────────────────────────────────────────────

// WorkflowRepo vista de workflows del Store.
type WorkflowRepo struct{ s *Store }

func (r *WorkflowRepo) Ensure(_ context.Context, orderNumber string, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.workflows[orderNumber]; ok {
		return nil
	}
	r.s.d.workflows[orderNumber] = &entity.OrderWorkflow{
		ID:          uuid.New().String(),
		OrderNumber: orderNumber,
		Status:      entity.WorkflowStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return nil
}

func (r *WorkflowRepo) GetByOrderNumber(_ context.Context, orderNumber string) (*entity.OrderWorkflow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.d.workflows[orderNumber]
	if !ok {
		return nil, nil
	}
	out := *w
	out.Items = nil
	for _, it := range r.s.d.items[w.ID] {
		c := *it
		out.Items = append(out.Items, &c)
	}
	return &out, nil
}

func (r *WorkflowRepo) GetByOrderNumberForUpdate(ctx context.Context, orderNumber string) (*entity.OrderWorkflow, error) {
	return r.GetByOrderNumber(ctx, orderNumber)
}

func (r *WorkflowRepo) Update(_ context.Context, w *entity.OrderWorkflow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.workflows[w.OrderNumber]; !ok {
		return domain.ErrNotFound
	}
	c := *w
	c.Items = nil
	r.s.d.workflows[w.OrderNumber] = &c
	return nil
}

func (r *WorkflowRepo) UpsertItem(_ context.Context, workflowID string, it *entity.WorkflowItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *it
	c.WorkflowID = workflowID
	list := r.s.d.items[workflowID]
	for i, existing := range list {
		if existing.LineKey == it.LineKey {
			c.ID = existing.ID
			list[i] = &c
			return nil
		}
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	r.s.d.items[workflowID] = append(list, &c)
	return nil
}

func (r *WorkflowRepo) StatusMap(_ context.Context, orderNumbers []string) (map[string]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]string, len(orderNumbers))
	for _, n := range orderNumbers {
		if w, ok := r.s.d.workflows[n]; ok {
			out[n] = w.Status
		}
	}
	return out, nil
}

// ── estantes ─────────────────────────────────────────────────────────────────

// ShelfRepo vista del directorio de estantes del Store.
type ShelfRepo struct{ s *Store }

func (r *ShelfRepo) Upsert(_ context.Context, loc *entity.ShelfLocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.d.shelves[loc.ProductCode] = *loc
	return nil
}

func (r *ShelfRepo) Delete(_ context.Context, productCode string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.d.shelves[productCode]
	delete(r.s.d.shelves, productCode)
	return ok, nil
}

func (r *ShelfRepo) Get(_ context.Context, productCode string) (*entity.ShelfLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	loc, ok := r.s.d.shelves[productCode]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (r *ShelfRepo) ListByProducts(_ context.Context, productCodes []string) (map[string]*entity.ShelfLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[string]*entity.ShelfLocation{}
	if len(productCodes) == 0 {
		for code, loc := range r.s.d.shelves {
			l := loc
			out[code] = &l
		}
		return out, nil
	}
	for _, code := range productCodes {
		if loc, ok := r.s.d.shelves[code]; ok {
			l := loc
			out[code] = &l
		}
	}
	return out, nil
}

// ── reportes de imagen ───────────────────────────────────────────────────────

// ImageIssueRepo vista de reportes de imagen del Store.
type ImageIssueRepo struct{ s *Store }

func (r *ImageIssueRepo) FindOpen(_ context.Context, orderNumber, lineKey string) (*entity.ImageIssueReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rep := r.s.d.openReport(orderNumber, lineKey, ""); rep != nil {
		c := *rep
		return &c, nil
	}
	return nil, nil
}

func (r *ImageIssueRepo) Create(_ context.Context, rep *entity.ImageIssueReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rep.Status == entity.ImageIssueStatusOpen && r.s.d.openReport(rep.OrderNumber, rep.LineKey, rep.ID) != nil {
		return domain.ErrDuplicate
	}
	c := *rep
	r.s.d.issues = append(r.s.d.issues, &c)
	return nil
}

func (r *ImageIssueRepo) GetByID(_ context.Context, id string) (*entity.ImageIssueReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.d.issues {
		if rep.ID == id {
			c := *rep
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ImageIssueRepo) Update(_ context.Context, rep *entity.ImageIssueReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rep.Status == entity.ImageIssueStatusOpen && r.s.d.openReport(rep.OrderNumber, rep.LineKey, rep.ID) != nil {
		return domain.ErrDuplicate
	}
	for i, existing := range r.s.d.issues {
		if existing.ID == rep.ID {
			c := *rep
			r.s.d.issues[i] = &c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ImageIssueRepo) List(_ context.Context, f repository.ImageIssueFilter) ([]*entity.ImageIssueReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ImageIssueReport
	for _, rep := range r.s.d.issues {
		if (f.OrderNumber != "" && rep.OrderNumber != f.OrderNumber) ||
			(f.ProductCode != "" && rep.ProductCode != f.ProductCode) ||
			(f.Status != "" && rep.Status != f.Status) {
			continue
		}
		c := *rep
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Offset >= len(out) {
		return []*entity.ImageIssueReport{}, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// ── irsaliyes ────────────────────────────────────────────────────────────────

// DispatchRepo vista de irsaliyes del Store.
type DispatchRepo struct{ s *Store }

func (r *DispatchRepo) Create(_ context.Context, rec *entity.DispatchRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailDispatchCreate != nil {
		return r.s.FailDispatchCreate
	}
	for _, existing := range r.s.d.records {
		if existing.DocumentNo == rec.DocumentNo {
			return domain.ErrDuplicate
		}
	}
	c := *rec
	r.s.d.records = append(r.s.d.records, &c)
	return nil
}

func (r *DispatchRepo) GetByDocumentNo(_ context.Context, documentNo string) (*entity.DispatchRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.d.records {
		if rec.DocumentNo == documentNo {
			c := *rec
			return &c, nil
		}
	}
	return nil, nil
}

func (r *DispatchRepo) ListByOrder(_ context.Context, orderNumber string) ([]*entity.DispatchRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.DispatchRecord
	for _, rec := range r.s.d.records {
		if rec.OrderNumber == orderNumber {
			c := *rec
			out = append(out, &c)
		}
	}
	return out, nil
}

// All devuelve una copia de las irsaliyes guardadas.
func (r *DispatchRepo) All() []entity.DispatchRecord {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.DispatchRecord, 0, len(r.s.d.records))
	for _, rec := range r.s.d.records {
		out = append(out, *rec)
	}
	return out
}

func (d data) openReport(orderNumber, lineKey, exceptID string) *entity.ImageIssueReport {
	for _, rep := range d.issues {
		if rep.ID != exceptID && rep.OrderNumber == orderNumber && rep.LineKey == lineKey && rep.Status == entity.ImageIssueStatusOpen {
			return rep
		}
	}
	return nil
}

func (d data) clone() data {
	out := data{
		workflows: make(map[string]*entity.OrderWorkflow, len(d.workflows)),
		items:     make(map[string][]*entity.WorkflowItem, len(d.items)),
		shelves:   make(map[string]entity.ShelfLocation, len(d.shelves)),
	}
	for k, w := range d.workflows {
		c := *w
		out.workflows[k] = &c
	}
	for k, list := range d.items {
		cl := make([]*entity.WorkflowItem, len(list))
		for i, it := range list {
			c := *it
			cl[i] = &c
		}
		out.items[k] = cl
	}
	for k, v := range d.shelves {
		out.shelves[k] = v
	}
	for _, rep := range d.issues {
		c := *rep
		out.issues = append(out.issues, &c)
	}
	for _, rec := range d.records {
		c := *rec
		out.records = append(out.records, &c)
	}
	return out
}
