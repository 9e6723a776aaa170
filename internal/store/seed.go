// ABOUTME: Demo seed dataset for the sales database
// ABOUTME: Inserted exactly once, guarded by an emptiness check on customers

package store

import "fmt"

// Seed row counts, fixed by the literals below.
const (
	SeedCustomers = 5
	SeedProducts  = 5
	SeedSales     = 7
	SeedSaleItems = 11
)

var seedCustomers = []struct {
	name, email, phone, address string
}{
	{"John Doe", "john@example.com", "555-1234", "123 Main St"},
	{"Jane Smith", "jane@example.com", "555-5678", "456 Oak Ave"},
	{"Bob Johnson", "bob@example.com", "555-9012", "789 Pine Rd"},
	{"Alice Brown", "alice@example.com", "555-3456", "321 Elm St"},
	{"Charlie Davis", "charlie@example.com", "555-7890", "654 Maple Dr"},
}

var seedProducts = []struct {
	name, description string
	price             float64
	stock             int
}{
	{"Laptop", "High-performance laptop", 1200.00, 10},
	{"Smartphone", "Latest model smartphone", 800.00, 15},
	{"Tablet", "10-inch tablet", 300.00, 20},
	{"Headphones", "Noise-cancelling headphones", 150.00, 30},
	{"Monitor", "27-inch 4K monitor", 350.00, 8},
}

var seedSales = []struct {
	customerID int
	date       string
	total      float64
}{
	{1, "2013-01-15", 3200.00},
	{2, "2013-01-20", 750.00},
	{3, "2013-02-05", 200.00},
	{4, "2013-02-10", 600.00},
	{5, "2013-03-01", 2550.00},
	{1, "2013-03-15", 550.00},
	{2, "2013-04-02", 650.00},
}

var seedSaleItems = []struct {
	saleID, productID, quantity int
	unitPrice                   float64
}{
	{1, 1, 1, 3200.00},
	{2, 2, 1, 600.00},
	{2, 4, 1, 250.00},
	{3, 3, 1, 400.00},
	{4, 4, 2, 550.00},
	{4, 3, 1, 500.00},
	{5, 1, 1, 2200.00},
	{5, 4, 1, 450.00},
	{5, 5, 1, 500.00},
	{6, 4, 1, 250.00},
	{7, 5, 1, 350.00},
}

// seedIfEmpty inserts the demo dataset when customers has no rows.
// The emptiness check is the only guard: repeat calls never duplicate
// seed rows. The insert runs in one transaction, so a failure leaves the
// database unseeded rather than partially seeded.
func (s *SQLiteStore) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM customers").Scan(&count); err != nil {
		return fmt.Errorf("counting customers: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range seedCustomers {
		if _, err := tx.Exec(
			"INSERT INTO customers (name, email, phone, address) VALUES (?, ?, ?, ?)",
			c.name, c.email, c.phone, c.address,
		); err != nil {
			return fmt.Errorf("seeding customers: %w", err)
		}
	}

	for _, p := range seedProducts {
		if _, err := tx.Exec(
			"INSERT INTO products (name, description, price, stock_quantity) VALUES (?, ?, ?, ?)",
			p.name, p.description, p.price, p.stock,
		); err != nil {
			return fmt.Errorf("seeding products: %w", err)
		}
	}

	// Sales reference customers and sale_items reference both sales and
	// products, so insertion order matters with foreign keys enforced.
	for _, sale := range seedSales {
		if _, err := tx.Exec(
			"INSERT INTO sales (customer_id, sale_date, total_amount) VALUES (?, ?, ?)",
			sale.customerID, sale.date, sale.total,
		); err != nil {
			return fmt.Errorf("seeding sales: %w", err)
		}
	}

	for _, item := range seedSaleItems {
		if _, err := tx.Exec(
			"INSERT INTO sale_items (sale_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)",
			item.saleID, item.productID, item.quantity, item.unitPrice,
		); err != nil {
			return fmt.Errorf("seeding sale_items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	s.logger.Info("seeded demo data",
		"customers", SeedCustomers,
		"products", SeedProducts,
		"sales", SeedSales,
		"sale_items", SeedSaleItems,
	)
	return nil
}
