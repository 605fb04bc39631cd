// seed.go creates the sample schema and bulk-loads the fixture tables.
package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	pgx "github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/DachengChen/paiBI/applog"
	"github.com/DachengChen/paiBI/dataset"
)

// seedOrder lists tables parents first, so foreign keys resolve.
var seedOrder = []string{
	dataset.TableProducts,
	dataset.TableEmployees,
	dataset.TableCustomers,
	dataset.TableUsers,
	dataset.TableSales,
}

// SeedOptions controls Seed.
type SeedOptions struct {
	// Reset truncates the tables before loading.
	Reset bool
}

// SeedReport counts the rows copied per table.
type SeedReport struct {
	Tables []string
	Rows   map[string]int64
}

// Seed applies the schema and copies every fixture table in one
// transaction.
func (d *DB) Seed(ctx context.Context, opts SeedOptions) (*SeedReport, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range dataset.DDLStatements() {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	if opts.Reset {
		if _, err := tx.Exec(ctx, truncateSQL()); err != nil {
			return nil, fmt.Errorf("truncate: %w", err)
		}
	}

	report := &SeedReport{Rows: make(map[string]int64, len(seedOrder))}
	for _, name := range seedOrder {
		t, _ := dataset.Lookup(name)
		rows, err := CopyRows(name)
		if err != nil {
			return nil, err
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{name}, t.Columns, pgx.CopyFromRows(rows))
		if err != nil {
			return nil, fmt.Errorf("copy %s: %w", name, err)
		}
		report.Tables = append(report.Tables, name)
		report.Rows[name] = n
		applog.L().Info("seeded table", zap.String("table", name), zap.Int64("rows", n))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return report, nil
}

func truncateSQL() string {
	ids := make([]string, len(seedOrder))
	for i, name := range seedOrder {
		ids[i] = pgx.Identifier{name}.Sanitize()
	}
	return "TRUNCATE " + strings.Join(ids, ", ") + " CASCADE"
}

// CopyRows returns a fixture table as COPY input, in the column order of
// dataset.Lookup(name).Columns. Dates become time.Time.
func CopyRows(name string) ([][]any, error) {
	switch name {
	case dataset.TableProducts:
		return collect(dataset.Products(), func(p dataset.Product) ([]any, error) {
			return []any{p.ID, p.Name, p.Category, p.UnitPrice}, nil
		})
	case dataset.TableEmployees:
		return collect(dataset.Employees(), func(e dataset.Employee) ([]any, error) {
			return []any{e.ID, e.FirstName, e.LastName, e.Position, e.Email, e.Salary}, nil
		})
	case dataset.TableCustomers:
		return collect(dataset.Customers(), func(c dataset.Customer) ([]any, error) {
			return []any{c.ID, c.Region, c.FirstName, c.LastName, c.Email}, nil
		})
	case dataset.TableUsers:
		return collect(dataset.Users(), func(u dataset.User) ([]any, error) {
			return []any{u.ID, u.EmployeeID, u.Role, u.Email}, nil
		})
	case dataset.TableSales:
		return collect(dataset.Sales(), func(s dataset.Sale) ([]any, error) {
			day, err := time.Parse(time.DateOnly, s.Date)
			if err != nil {
				return nil, fmt.Errorf("sale %d date: %w", s.ID, err)
			}
			return []any{
				s.ID, s.EmployeeID, s.CustomerID, s.ProductID, s.Channel, s.Quantity,
				s.DiscountPercentage, s.PaymentMethod, s.Subtotal, s.DiscountAmount, s.Total, day,
			}, nil
		})
	default:
		return nil, fmt.Errorf("unknown table %q", name)
	}
}

func collect[T any](items []T, row func(T) ([]any, error)) ([][]any, error) {
	out := make([][]any, 0, len(items))
	for _, it := range items {
		r, err := row(it)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
