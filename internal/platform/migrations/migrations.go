package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&customerRecord{},
		&productRecord{},
		&orderRecord{},
		&orderLineRecord{},
		&idempotencyRecord{},
	)
}

// Customer schema mirrors the customers Postgres adapter.
type customerRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerRecord) TableName() string { return "customers" }

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	Price     float64   `gorm:"column:price;type:numeric(10,2)"`
	Quantity  int64     `gorm:"column:quantity"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Order and order line schemas mirror the orders Postgres adapter.
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

// Idempotency schema mirrors the orders idempotency store.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:255"`
	RequestHash string    `gorm:"column:request_hash;size:64"`
	OrderID     string    `gorm:"column:order_id;type:uuid;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (idempotencyRecord) TableName() string { return "order_idempotency_keys" }
