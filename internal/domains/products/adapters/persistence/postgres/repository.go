package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orderstack/commerce-api/internal/domains/products/domain"
	"github.com/orderstack/commerce-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists catalog products in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&productRecord{})
	}
	return repo
}

type productRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	Price     float64   `gorm:"column:price;type:numeric(10,2)"`
	Quantity  int64     `gorm:"column:quantity"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Save inserts or updates a product keyed by id.
func (r *Repository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "quantity", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.getByID(ctx, record.ID)
}

// FindByName fetches the single product with the given name.
func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "name = ?", strings.TrimSpace(name)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindAllByID returns all matching products. Result order is whatever the
// database yields; callers match records by identifier.
func (r *Repository) FindAllByID(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Find(&records, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

// UpdateQuantity subtracts stock per product inside a single transaction.
// Each decrement is keyed by product id and guarded so the stored quantity
// never goes negative; any failure rolls back every decrement.
func (r *Repository) UpdateQuantity(ctx context.Context, updates []ports.QuantityUpdate) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(updates))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&productRecord{}).
				Where("id = ? AND quantity >= ?", update.ProductID, update.Quantity).
				Updates(map[string]any{
					"quantity":   gorm.Expr("quantity - ?", update.Quantity),
					"updated_at": gorm.Expr("NOW()"),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				var count int64
				if err := tx.Model(&productRecord{}).Where("id = ?", update.ProductID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return fmt.Errorf("%w: %s", ports.ErrNotFound, update.ProductID)
				}
				return fmt.Errorf("%w: %s", ports.ErrStockExhausted, update.ProductID)
			}
			ids = append(ids, update.ProductID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindAllByID(ctx, ids)
}

// List returns all catalog products.
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func (r *Repository) getByID(ctx context.Context, id string) (*domain.Product, error) {
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
	}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Quantity: r.Quantity,
	}
}
