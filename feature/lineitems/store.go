package lineitems

import (
	"context"
	"errors"
	"fmt"
	"time"

	"order-items/feature/lineitems/models"

	"gorm.io/gorm"
)

// ItemRepository is typed access to one collection's rows.
type ItemRepository interface {
	List(ctx context.Context, documentID uint64) ([]models.LineItem, error)
	Get(ctx context.Context, id uint64) (*models.LineItem, error)
	Insert(ctx context.Context, documentID uint64, f models.Fields) (uint64, error)
	Update(ctx context.Context, id, documentID uint64, f models.Fields) (int64, error)
	UpdateField(ctx context.Context, id uint64, column string, value any) (int64, error)
	UpdateSortOrder(ctx context.Context, id, documentID uint64, sortOrder int) (int64, error)
	DeleteWhereNotIn(ctx context.Context, documentID uint64, keep []uint64) (int64, error)
	DeleteAll(ctx context.Context, documentID uint64) (int64, error)
	DeleteOne(ctx context.Context, id, documentID uint64) error
}

var _ ItemRepository = (*Repository)(nil)

// Store hands out repositories bound to one connection or transaction.
type Store struct {
	db     *gorm.DB
	prefix string
	now    func() time.Time
}

// NewStore creates a store over db. prefix is the installation table prefix (e.g. "wp_ktp_").
func NewStore(db *gorm.DB, prefix string) *Store {
	return &Store{db: db, prefix: prefix, now: time.Now}
}

// TableName returns the full table name of a collection.
func (s *Store) TableName(kind models.Kind) string {
	return s.prefix + kind.TableSuffix()
}

// Items returns the repository of a collection.
func (s *Store) Items(kind models.Kind) *Repository {
	return &Repository{db: s.db, table: s.TableName(kind), kind: kind, now: s.now}
}

// Transaction runs fn against a store bound to one transaction.
// fn returning an error rolls everything back; nil commits.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, prefix: s.prefix, now: s.now})
	})
}

// EnsureSchema creates missing item tables. Used for sqlite bootstrap and tests;
// production tables are owned by the host installation.
func (s *Store) EnsureSchema(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Table(s.TableName(models.KindInvoice)).AutoMigrate(&models.InvoiceItem{}); err != nil {
		return fmt.Errorf("%w: migrate invoice items: %w", ErrStorage, err)
	}
	if err := db.Table(s.TableName(models.KindCost)).AutoMigrate(&models.LineItem{}); err != nil {
		return fmt.Errorf("%w: migrate cost items: %w", ErrStorage, err)
	}
	return nil
}

// Repository reads and writes one item table.
type Repository struct {
	db    *gorm.DB
	table string
	kind  models.Kind
	now   func() time.Time
}

func (r *Repository) q(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx).Table(r.table)
	if !r.kind.HasSupplier() {
		tx = tx.Omit("supplier_id")
	}
	return tx
}

// List returns a document's rows by sort_order, then id. No rows is an empty slice.
func (r *Repository) List(ctx context.Context, documentID uint64) ([]models.LineItem, error) {
	items := []models.LineItem{}
	err := r.q(ctx).
		Where("document_id = ?", documentID).
		Order("sort_order ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", ErrStorage, r.table, err)
	}
	return items, nil
}

// Get loads a row by id.
func (r *Repository) Get(ctx context.Context, id uint64) (*models.LineItem, error) {
	var item models.LineItem
	err := r.q(ctx).Where("id = ?", id).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s id %d", ErrNotFound, r.kind, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s id %d: %w", ErrStorage, r.table, id, err)
	}
	return &item, nil
}

// Insert writes a new row and returns its id.
func (r *Repository) Insert(ctx context.Context, documentID uint64, f models.Fields) (uint64, error) {
	now := r.now()
	row := models.LineItem{
		DocumentID:  documentID,
		ProductName: f.ProductName,
		Price:       f.Price,
		Unit:        f.Unit,
		Quantity:    f.Quantity,
		Amount:      f.Amount,
		Remarks:     f.Remarks,
		SortOrder:   f.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if r.kind.HasSupplier() {
		row.SupplierID = f.SupplierID
	}

	if err := r.q(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("%w: insert into %s: %w", ErrStorage, r.table, err)
	}
	if row.ID == 0 {
		return 0, fmt.Errorf("%w: insert into %s returned no id", ErrStorage, r.table)
	}
	return row.ID, nil
}

// Update rewrites a row scoped by id and document. It returns rows affected;
// zero is a no-op match, not an error.
func (r *Repository) Update(ctx context.Context, id, documentID uint64, f models.Fields) (int64, error) {
	values := map[string]any{
		"product_name": f.ProductName,
		"price":        f.Price,
		"unit":         f.Unit,
		"quantity":     f.Quantity,
		"amount":       f.Amount,
		"remarks":      f.Remarks,
		"sort_order":   f.SortOrder,
		"updated_at":   r.now(),
	}
	if r.kind.HasSupplier() {
		values["supplier_id"] = f.SupplierID
	}

	res := r.db.WithContext(ctx).Table(r.table).
		Where("id = ? AND document_id = ?", id, documentID).
		Updates(values)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: update %s id %d: %w", ErrStorage, r.table, id, res.Error)
	}
	return res.RowsAffected, nil
}

// UpdateField sets one column and stamps updated_at.
func (r *Repository) UpdateField(ctx context.Context, id uint64, column string, value any) (int64, error) {
	res := r.db.WithContext(ctx).Table(r.table).
		Where("id = ?", id).
		Updates(map[string]any{column: value, "updated_at": r.now()})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: update %s.%s id %d: %w", ErrStorage, r.table, column, id, res.Error)
	}
	return res.RowsAffected, nil
}

// UpdateSortOrder moves a row. Rows of other documents are never matched.
func (r *Repository) UpdateSortOrder(ctx context.Context, id, documentID uint64, sortOrder int) (int64, error) {
	res := r.db.WithContext(ctx).Table(r.table).
		Where("id = ? AND document_id = ?", id, documentID).
		Updates(map[string]any{"sort_order": sortOrder, "updated_at": r.now()})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: reorder %s id %d: %w", ErrStorage, r.table, id, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteWhereNotIn removes a document's rows whose id is not in keep.
// An empty keep list deletes nothing; use DeleteAll to clear.
func (r *Repository) DeleteWhereNotIn(ctx context.Context, documentID uint64, keep []uint64) (int64, error) {
	if len(keep) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Table(r.table).
		Where("document_id = ? AND id NOT IN ?", documentID, keep).
		Delete(&models.LineItem{})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: prune %s document %d: %w", ErrStorage, r.table, documentID, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteAll removes every row of a document.
func (r *Repository) DeleteAll(ctx context.Context, documentID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Table(r.table).
		Where("document_id = ?", documentID).
		Delete(&models.LineItem{})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: clear %s document %d: %w", ErrStorage, r.table, documentID, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteOne removes a single row, but only if it belongs to documentID.
func (r *Repository) DeleteOne(ctx context.Context, id, documentID uint64) error {
	res := r.db.WithContext(ctx).Table(r.table).
		Where("id = ? AND document_id = ?", id, documentID).
		Delete(&models.LineItem{})
	if res.Error != nil {
		return fmt.Errorf("%w: delete %s id %d: %w", ErrStorage, r.table, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s id %d under document %d", ErrNotFound, r.kind, id, documentID)
	}
	return nil
}
