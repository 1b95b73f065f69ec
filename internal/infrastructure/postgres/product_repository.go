package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo inventario por sector sobre PostgreSQL.
// price y cost son NUMERIC y se leen como decimal.Decimal (codec registrado en NewPool).
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// ListBySector devuelve los productos del sector ordenados por id. Sin filas, slice vacío.
func (r *ProductRepo) ListBySector(ctx context.Context, sector entity.Sector) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sector, name, category, quantity, price, cost, barcode, supplier, last_updated
		FROM products WHERE sector = $1 ORDER BY id`, sector.String())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		var sectorID string
		if err := rows.Scan(
			&p.ID, &sectorID, &p.Name, &p.Category, &p.Quantity,
			&p.Price, &p.Cost, &p.Barcode, &p.Supplier, &p.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Sector = entity.Sector(sectorID)
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// Seed inserta los productos que aún no existen (clave sector + id) en una transacción.
// Las filas ya presentes no se tocan, así los cambios hechos en la base sobreviven al arranque.
func (r *ProductRepo) Seed(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, p := range products {
		if _, err := tx.Exec(ctx, `
			INSERT INTO products (id, sector, name, category, quantity, price, cost, barcode, supplier, last_updated)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (sector, id) DO NOTHING`,
			p.ID, p.Sector.String(), p.Name, p.Category, p.Quantity,
			p.Price, p.Cost, p.Barcode, p.Supplier, p.LastUpdated,
		); err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
