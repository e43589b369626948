// Package catalogrepo reads current unit prices from the product catalog.
// The catalog is maintained elsewhere; this repository only resolves prices
// for active products at cart time.
package catalogrepo

import (
	"context"
	"database/sql"
	"errors"

	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog reader.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetActivePrice returns the unit price of an active product.
func (r *GormProductCatalog) GetActivePrice(ctx context.Context, productID int64) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`SELECT precio_base FROM productos WHERE id = ? AND activo LIMIT 1`, productID).
		Row().Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, errs.NewObjectNotFoundError("producto", productID)
		}
		return decimal.Zero, err
	}

	return price, nil
}
