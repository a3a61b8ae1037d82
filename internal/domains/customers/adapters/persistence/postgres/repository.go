package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orderstack/commerce-api/internal/domains/customers/domain"
	"github.com/orderstack/commerce-api/internal/domains/customers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists customers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&customerRecord{})
	}
	return repo
}

type customerRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerRecord) TableName() string { return "customers" }

// Save inserts or updates a customer keyed by id.
func (r *Repository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	clone := *customer
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a customer by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", strings.TrimSpace(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByEmail fetches a customer by registered email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.db.WithContext(ctx).First(&record, "email = ?", strings.TrimSpace(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all customers.
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []customerRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	customers := make([]*domain.Customer, 0, len(records))
	for i := range records {
		customers = append(customers, records[i].toDomain())
	}
	return customers, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres customer repository not configured")
	}
	return nil
}

func toRecord(customer *domain.Customer) customerRecord {
	return customerRecord{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}
}

func (r customerRecord) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}
}
