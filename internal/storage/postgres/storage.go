package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage; tests substitute
// a mock implementation.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// cartUpsertAttempts bounds internal retries of the cart increment on
// serialization aborts before the failure surfaces to the caller.
const cartUpsertAttempts = 3

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type menuRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Menu() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS user_roles (
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            role TEXT NOT NULL,
            PRIMARY KEY (user_id, role)
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id SERIAL PRIMARY KEY,
            slug TEXT UNIQUE NOT NULL,
            title TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            price NUMERIC(10,2) NOT NULL,
            featured BOOLEAN NOT NULL DEFAULT FALSE,
            category_id BIGINT NOT NULL REFERENCES categories(id)
        )`,
		`CREATE TABLE IF NOT EXISTS cart_lines (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            menuitem_id BIGINT NOT NULL REFERENCES menu_items(id),
            quantity INT NOT NULL CHECK (quantity > 0),
            unit_price NUMERIC(10,2) NOT NULL,
            price NUMERIC(10,2) NOT NULL,
            UNIQUE (user_id, menuitem_id)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            delivery_crew_id BIGINT REFERENCES users(id),
            status TEXT NOT NULL,
            total NUMERIC(10,2) NOT NULL,
            date TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            menuitem_id BIGINT NOT NULL,
            quantity INT NOT NULL,
            unit_price NUMERIC(10,2) NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_cart_lines_user ON cart_lines(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_crew ON orders(delivery_crew_id, date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	var u model.User
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertUser = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertUser, login, passwordHash).Scan(&u.ID, &u.CreatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}
		const insertRole = `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`
		if _, err := tx.Exec(ctx, insertRole, u.ID, model.RoleCustomer); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Roles = model.RoleSet{model.RoleCustomer}
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if u.Roles, err = r.roles(ctx, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if u.Roles, err = r.roles(ctx, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) roles(ctx context.Context, userID int64) (model.RoleSet, error) {
	const query = `SELECT role FROM user_roles WHERE user_id=$1 ORDER BY role`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles model.RoleSet
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, model.Role(role))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	const query = `SELECT u.id, u.login, u.created_at
                   FROM users u JOIN user_roles ur ON ur.user_id = u.id
                   WHERE ur.role=$1 ORDER BY u.id`
	rows, err := r.storage.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Roles = model.RoleSet{role}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) AddRole(ctx context.Context, userID int64, role model.Role) error {
	const query = `INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.storage.pool.Exec(ctx, query, userID, role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *userRepository) RemoveRole(ctx context.Context, userID int64, role model.Role) error {
	const query = `DELETE FROM user_roles WHERE user_id=$1 AND role=$2`
	_, err := r.storage.pool.Exec(ctx, query, userID, role)
	return err
}

// --- MenuRepository implementation ---

func (r *menuRepository) CreateCategory(ctx context.Context, slug, title string) (*model.Category, error) {
	const query = `INSERT INTO categories (slug, title) VALUES ($1, $2) RETURNING id`
	var c model.Category
	if err := r.storage.pool.QueryRow(ctx, query, slug, title).Scan(&c.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.Slug = slug
	c.Title = title
	return &c, nil
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, slug, title FROM categories ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Title); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) CreateItem(ctx context.Context, title string, price decimal.Decimal, featured bool, categoryID int64) (*model.MenuItem, error) {
	const query = `INSERT INTO menu_items (title, price, featured, category_id) VALUES ($1, $2, $3, $4) RETURNING id`
	var item model.MenuItem
	if err := r.storage.pool.QueryRow(ctx, query, title, price, featured, categoryID).Scan(&item.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	item.Title = title
	item.Price = price
	item.Featured = featured
	item.CategoryID = categoryID
	return &item, nil
}

func (r *menuRepository) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	const query = `SELECT id, title, price, featured, category_id FROM menu_items WHERE id=$1`
	var item model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.Title, &item.Price, &item.Featured, &item.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) ListItems(ctx context.Context, categorySlug string) ([]model.MenuItem, error) {
	query := `SELECT id, title, price, featured, category_id FROM menu_items ORDER BY id`
	args := []any{}
	if categorySlug != "" {
		query = `SELECT m.id, m.title, m.price, m.featured, m.category_id
                 FROM menu_items m JOIN categories c ON c.id = m.category_id
                 WHERE c.slug=$1 ORDER BY m.id`
		args = append(args, categorySlug)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Price, &item.Featured, &item.CategoryID); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	const query = `UPDATE menu_items SET title=$2, price=$3, featured=$4, category_id=$5 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, item.ID, item.Title, item.Price, item.Featured, item.CategoryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM menu_items WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CartRepository implementation ---

// AddLine upserts the (user, menu item) line in one statement so concurrent
// adds can never produce duplicate lines or lost increments. The stored
// unit_price wins on conflict: accumulation keeps the first snapshot.
func (r *cartRepository) AddLine(ctx context.Context, userID, menuItemID int64, quantity int32, unitPrice decimal.Decimal) (*model.CartLine, error) {
	const query = `INSERT INTO cart_lines (user_id, menuitem_id, quantity, unit_price, price)
                   VALUES ($1, $2, $3, $4, $4 * $3)
                   ON CONFLICT (user_id, menuitem_id) DO UPDATE
                   SET quantity = cart_lines.quantity + EXCLUDED.quantity,
                       price = cart_lines.unit_price * (cart_lines.quantity + EXCLUDED.quantity)
                   RETURNING id, quantity, unit_price, price`

	line := model.CartLine{UserID: userID, MenuItemID: menuItemID}
	var err error
	for attempt := 0; attempt < cartUpsertAttempts; attempt++ {
		err = r.storage.pool.QueryRow(ctx, query, userID, menuItemID, quantity, unitPrice).
			Scan(&line.ID, &line.Quantity, &line.UnitPrice, &line.Price)
		if err == nil {
			return &line, nil
		}
		if !isSerializationFailure(err) {
			break
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return nil, domainErrors.ErrItemNotFound
	}
	if isSerializationFailure(err) {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrTransactionFailed, err)
	}
	return nil, err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	const query = `SELECT id, user_id, menuitem_id, quantity, unit_price, price
                   FROM cart_lines WHERE user_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		var line model.CartLine
		if err := rows.Scan(&line.ID, &line.UserID, &line.MenuItemID, &line.Quantity, &line.UnitPrice, &line.Price); err != nil {
			return nil, err
		}
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	const query = `DELETE FROM cart_lines WHERE user_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}

// --- OrderRepository implementation ---

// CreateFromCart converts the user's cart into an order inside one
// transaction. FOR UPDATE on the cart rows keeps concurrent AddLine/Clear
// calls out until the checkout commits or rolls back.
func (r *orderRepository) CreateFromCart(ctx context.Context, userID int64, date time.Time) (*model.Order, error) {
	order := &model.Order{UserID: userID, Status: model.OrderStatusUnassigned, Date: date}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectCart = `SELECT menuitem_id, quantity, unit_price, price
                            FROM cart_lines WHERE user_id=$1 ORDER BY id FOR UPDATE`
		rows, err := tx.Query(ctx, selectCart, userID)
		if err != nil {
			return err
		}

		total := decimal.Zero
		var items []model.OrderItem
		for rows.Next() {
			var item model.OrderItem
			var linePrice decimal.Decimal
			if err := rows.Scan(&item.MenuItemID, &item.Quantity, &item.UnitPrice, &linePrice); err != nil {
				rows.Close()
				return err
			}
			total = total.Add(linePrice)
			items = append(items, item)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if len(items) == 0 {
			return domainErrors.ErrEmptyCart
		}

		const insertOrder = `INSERT INTO orders (user_id, status, total, date) VALUES ($1, $2, $3, $4) RETURNING id`
		if err := tx.QueryRow(ctx, insertOrder, userID, order.Status, total, date).Scan(&order.ID); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, menuitem_id, quantity, unit_price)
                            VALUES ($1, $2, $3, $4) RETURNING id`
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.QueryRow(ctx, insertItem, order.ID, items[i].MenuItemID, items[i].Quantity, items[i].UnitPrice).Scan(&items[i].ID); err != nil {
				return err
			}
		}

		const drainCart = `DELETE FROM cart_lines WHERE user_id=$1`
		if _, err := tx.Exec(ctx, drainCart, userID); err != nil {
			return err
		}

		order.Total = total
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, user_id, delivery_crew_id, status, total, date FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.UserID, &o.DeliveryCrewID, &o.Status, &o.Total, &o.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.itemsFor(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, delivery_crew_id, status, total, date
                   FROM orders WHERE user_id=$1 ORDER BY date DESC`
	return r.list(ctx, query, userID)
}

func (r *orderRepository) ListByCrew(ctx context.Context, crewID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, delivery_crew_id, status, total, date
                   FROM orders WHERE delivery_crew_id=$1 ORDER BY date DESC`
	return r.list(ctx, query, crewID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, user_id, delivery_crew_id, status, total, date
                   FROM orders ORDER BY date DESC`
	return r.list(ctx, query)
}

func (r *orderRepository) ListUnassignedBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	const query = `SELECT id, user_id, delivery_crew_id, status, total, date
                   FROM orders WHERE status=$1 AND date < $2 ORDER BY date`
	return r.list(ctx, query, model.OrderStatusUnassigned, cutoff)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	var ids []int64
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.DeliveryCrewID, &o.Status, &o.Total, &o.Date); err != nil {
			return nil, err
		}
		result = append(result, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}
	return result, nil
}

func (r *orderRepository) itemsFor(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	const query = `SELECT id, order_id, menuitem_id, quantity, unit_price
                   FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]model.OrderItem)
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateDeliveryCrew records the assignee and moves a still unassigned order
// to ASSIGNED. Re-assigning an order already in flight keeps its status.
func (r *orderRepository) UpdateDeliveryCrew(ctx context.Context, orderID, crewID int64) error {
	const query = `UPDATE orders
                   SET delivery_crew_id=$2,
                       status = CASE WHEN status='UNASSIGNED' THEN 'ASSIGNED' ELSE status END
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, crewID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) UpdateDate(ctx context.Context, orderID int64, date time.Time) error {
	const query = `UPDATE orders SET date=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, date)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}

// Delete removes the order; order_items go with it via ON DELETE CASCADE.
func (r *orderRepository) Delete(ctx context.Context, orderID int64) error {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
