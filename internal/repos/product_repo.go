package repos

import (
	"database/sql"
	"errors"

	"farmacia/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, price, stock, discount, COALESCE(image,'') AS image, active`

// List returns active products ordered by id.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE active = 1 ORDER BY id`)
	return out, err
}

// Get returns an active product or ErrNotFound.
func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, r.db.Rebind(`SELECT `+productCols+` FROM products WHERE id = ? AND active = 1`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) (int64, error) {
	var id int64
	err := r.db.Get(&id, r.db.Rebind(`
	  INSERT INTO products(name, price, stock, discount, image, active)
	  VALUES(?, ?, ?, ?, ?, 1)
	  RETURNING id
	`), p.Name, p.Price, p.Stock, p.Discount, p.Image)
	return id, err
}

func (r *ProductRepo) UpdateStock(id int64, stock int) error {
	return r.exec(`UPDATE products SET stock = ? WHERE id = ? AND active = 1`, stock, id)
}

func (r *ProductRepo) UpdateDiscount(id int64, discount int) error {
	return r.exec(`UPDATE products SET discount = ? WHERE id = ? AND active = 1`, discount, id)
}

// Deactivate hides a product from the catalog. Rows are never deleted.
func (r *ProductRepo) Deactivate(id int64) error {
	return r.exec(`UPDATE products SET active = 0 WHERE id = ? AND active = 1`, id)
}

func (r *ProductRepo) exec(query string, args ...any) error {
	res, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
