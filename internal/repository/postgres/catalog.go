package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/nataliastore/StorefrontGo/pkg/errors"

	"github.com/nataliastore/StorefrontGo/internal/domain"
	"github.com/nataliastore/StorefrontGo/internal/repository"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies it
// too, which keeps tests off a live database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepository implements repository.CatalogRepository using PostgreSQL.
type CatalogRepository struct {
	db DB
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const productColumns = "id, name, slug, price, image, category, badge, sold_out, description"

// GetByID retrieves a product by its ID.
func (r *CatalogRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	return r.scanProduct(ctx, query, strconv.FormatInt(id, 10), id)
}

// GetBySlug retrieves a product by its slug.
func (r *CatalogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE slug = $1`

	return r.scanProduct(ctx, query, slug, slug)
}

func (r *CatalogRepository) scanProduct(ctx context.Context, query, ref string, arg any) (*domain.Product, error) {
	var (
		p     domain.Product
		badge *string
	)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Price,
		&p.Image,
		&p.Category,
		&badge,
		&p.SoldOut,
		&p.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", ref)
		}
		return nil, fmt.Errorf("query product: %w", err)
	}

	if badge != nil {
		p.Badge = *badge
	}
	return &p, nil
}

// List returns products matching the filter in catalog (id) order with the
// total match count.
func (r *CatalogRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *filter.Category)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// count(*) OVER() gives the total in the same query.
	query := fmt.Sprintf(`
		SELECT `+productColumns+`,
			   count(*) OVER() AS total_count
		FROM products
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	limit := filter.Limit
	if limit <= 0 {
		limit = 24
	}
	args = append(args, limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		products   []domain.Product
		totalCount int
	)

	for rows.Next() {
		var (
			p     domain.Product
			badge *string
		)

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Price,
			&p.Image,
			&p.Category,
			&badge,
			&p.SoldOut,
			&p.Description,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}

		if badge != nil {
			p.Badge = *badge
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, totalCount, nil
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)
