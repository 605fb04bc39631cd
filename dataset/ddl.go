// ddl.go renders the PostgreSQL schema for the fixture tables.
//
// The same text is returned by the schema-design answer and applied by
// `paibi seed`, so what the assistant shows is what gets created.
package dataset

import "strings"

var ddlStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
    product_id   INTEGER PRIMARY KEY,
    product_name TEXT NOT NULL,
    category     TEXT NOT NULL,
    unit_price   NUMERIC(10,2) NOT NULL CHECK (unit_price > 0)
);`,
	`CREATE TABLE IF NOT EXISTS employees (
    employee_id INTEGER PRIMARY KEY,
    first_name  TEXT NOT NULL,
    last_name   TEXT NOT NULL,
    position    TEXT NOT NULL,
    email       TEXT NOT NULL UNIQUE,
    salary      NUMERIC(10,2) NOT NULL CHECK (salary > 0)
);`,
	`CREATE TABLE IF NOT EXISTS customers (
    customer_id INTEGER PRIMARY KEY,
    region      TEXT NOT NULL,
    first_name  TEXT NOT NULL,
    last_name   TEXT NOT NULL,
    email       TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS users (
    user_id     INTEGER PRIMARY KEY,
    employee_id INTEGER NOT NULL REFERENCES employees (employee_id),
    role        TEXT NOT NULL,
    email       TEXT NOT NULL
);`,
	// employee_id and product_id stay unconstrained: sample sales reference
	// ids outside the sample employee and product tables.
	`CREATE TABLE IF NOT EXISTS sales (
    sale_id             INTEGER PRIMARY KEY,
    employee_id         INTEGER NOT NULL,
    customer_id         INTEGER NOT NULL REFERENCES customers (customer_id),
    product_id          INTEGER NOT NULL,
    sales_channel       TEXT NOT NULL,
    quantity            INTEGER NOT NULL CHECK (quantity > 0),
    discount_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
    payment_method      TEXT NOT NULL,
    subtotal            NUMERIC(12,2) NOT NULL,
    discount_amount     NUMERIC(12,2) NOT NULL DEFAULT 0,
    total               NUMERIC(12,2) NOT NULL,
    date                DATE NOT NULL,
    CHECK (total = subtotal - discount_amount)
);`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer_id ON sales (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date);`,
}

// DDLStatements returns the schema as individual statements, in
// dependency order.
func DDLStatements() []string {
	return clone(ddlStatements)
}

// DDL returns the whole schema as one script.
func DDL() string {
	return strings.Join(ddlStatements, "\n\n")
}
