package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/orderstack/commerce-api/internal/domains/orders/domain"
	"github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and their lines in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &orderLineRecord{})
	}
	return repo
}

type orderRecord struct {
	ID         string    `gorm:"primaryKey;column:id;type:uuid"`
	CustomerID string    `gorm:"column:customer_id;type:uuid;index"`
	CreatedAt  time.Time `gorm:"column:created_at;index"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type orderLineRecord struct {
	ID        int64   `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID   string  `gorm:"column:order_id;type:uuid;index"`
	ProductID string  `gorm:"column:product_id;type:uuid;index"`
	Price     float64 `gorm:"column:price;type:numeric(10,2)"`
	Quantity  int64   `gorm:"column:quantity"`
}

func (orderLineRecord) TableName() string { return "order_lines" }

// Create inserts the order and its lines in one transaction. Orders are
// insert-only; there is no upsert path.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := orderRecord{ID: order.ID, CustomerID: order.CustomerID}
	lines := make([]orderLineRecord, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, orderLineRecord{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.Create(&lines).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order with its lines.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var lines []orderLineRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&lines, "order_id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomain(record, lines), nil
}

// List returns all orders with their lines.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(records))
	for i := range records {
		ids = append(ids, records[i].ID)
	}
	var lines []orderLineRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&lines, "order_id IN ?", ids).Error; err != nil {
		return nil, err
	}
	byOrder := make(map[string][]orderLineRecord, len(records))
	for _, line := range lines {
		byOrder[line.OrderID] = append(byOrder[line.OrderID], line)
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, toDomain(records[i], byOrder[records[i].ID]))
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toDomain(record orderRecord, lines []orderLineRecord) *domain.Order {
	order := &domain.Order{
		ID:         record.ID,
		CustomerID: record.CustomerID,
		CreatedAt:  record.CreatedAt,
		Lines:      make([]domain.Line, 0, len(lines)),
	}
	for _, line := range lines {
		order.Lines = append(order.Lines, domain.Line{
			ProductID: line.ProductID,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	return order
}
