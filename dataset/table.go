// table.go exposes the fixtures as named tables for browsing and seeding.
package dataset

import (
	"strings"
)

// Table names.
const (
	TableProducts  = "products"
	TableEmployees = "employees"
	TableCustomers = "customers"
	TableSales     = "sales"
	TableUsers     = "users"
)

// Column lists, in declaration order of the record fields.
var (
	ProductColumns  = []string{"product_id", "product_name", "category", "unit_price"}
	EmployeeColumns = []string{"employee_id", "first_name", "last_name", "position", "email", "salary"}
	CustomerColumns = []string{"customer_id", "region", "first_name", "last_name", "email"}
	UserColumns     = []string{"user_id", "employee_id", "role", "email"}
	SaleColumns     = []string{
		"sale_id", "employee_id", "customer_id", "product_id", "sales_channel", "quantity",
		"discount_percentage", "payment_method", "subtotal", "discount_amount", "total", "date",
	}
)

// Table is a named, column-ordered set of rows.
type Table struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Tables returns the known table names in sidebar order.
func Tables() []string {
	return []string{TableProducts, TableEmployees, TableCustomers, TableSales, TableUsers}
}

// Lookup returns the named table and whether the name is known.
func Lookup(name string) (Table, bool) {
	switch name {
	case TableProducts:
		return Table{Name: name, Columns: clone(ProductColumns), Rows: ProductRows(products)}, true
	case TableEmployees:
		return Table{Name: name, Columns: clone(EmployeeColumns), Rows: EmployeeRows(employees)}, true
	case TableCustomers:
		return Table{Name: name, Columns: clone(CustomerColumns), Rows: CustomerRows(customers)}, true
	case TableSales:
		return Table{Name: name, Columns: clone(SaleColumns), Rows: SaleRows(sales)}, true
	case TableUsers:
		return Table{Name: name, Columns: clone(UserColumns), Rows: UserRows(users)}, true
	}
	return Table{Name: name, Columns: []string{}, Rows: []Row{}}, false
}

// Get is Lookup without the known flag; unknown names yield an empty table.
func Get(name string) Table {
	t, _ := Lookup(name)
	return t
}

// Filter keeps rows where any cell contains term, case-insensitively.
// An empty term returns the table unchanged.
func (t Table) Filter(term string) Table {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return t
	}
	out := Table{Name: t.Name, Columns: t.Columns, Rows: []Row{}}
	for _, r := range t.Rows {
		for _, v := range r {
			if strings.Contains(strings.ToLower(v.String()), term) {
				out.Rows = append(out.Rows, r)
				break
			}
		}
	}
	return out
}

func clone(s []string) []string { return append([]string(nil), s...) }

// Row converts the product to a result row.
func (p Product) Row() Row {
	return Row{
		"product_id":   Int(p.ID),
		"product_name": Text(p.Name),
		"category":     Text(p.Category),
		"unit_price":   Number(p.UnitPrice),
	}
}

// Row converts the employee to a result row.
func (e Employee) Row() Row {
	return Row{
		"employee_id": Int(e.ID),
		"first_name":  Text(e.FirstName),
		"last_name":   Text(e.LastName),
		"position":    Text(e.Position),
		"email":       Text(e.Email),
		"salary":      Number(e.Salary),
	}
}

// Row converts the customer to a result row.
func (c Customer) Row() Row {
	return Row{
		"customer_id": Int(c.ID),
		"region":      Text(c.Region),
		"first_name":  Text(c.FirstName),
		"last_name":   Text(c.LastName),
		"email":       Text(c.Email),
	}
}

// Row converts the user to a result row.
func (u User) Row() Row {
	return Row{
		"user_id":     Int(u.ID),
		"employee_id": Int(u.EmployeeID),
		"role":        Text(u.Role),
		"email":       Text(u.Email),
	}
}

// Row converts the sale to a result row.
func (s Sale) Row() Row {
	return Row{
		"sale_id":             Int(s.ID),
		"employee_id":         Int(s.EmployeeID),
		"customer_id":         Int(s.CustomerID),
		"product_id":          Int(s.ProductID),
		"sales_channel":       Text(s.Channel),
		"quantity":            Int(s.Quantity),
		"discount_percentage": Number(s.DiscountPercentage),
		"payment_method":      Text(s.PaymentMethod),
		"subtotal":            Number(s.Subtotal),
		"discount_amount":     Number(s.DiscountAmount),
		"total":               Number(s.Total),
		"date":                Text(s.Date),
	}
}

// ProductRows converts products to rows.
func ProductRows(ps []Product) []Row { return rows(ps, Product.Row) }

// EmployeeRows converts employees to rows.
func EmployeeRows(es []Employee) []Row { return rows(es, Employee.Row) }

// CustomerRows converts customers to rows.
func CustomerRows(cs []Customer) []Row { return rows(cs, Customer.Row) }

// UserRows converts users to rows.
func UserRows(us []User) []Row { return rows(us, User.Row) }

// SaleRows converts sales to rows.
func SaleRows(ss []Sale) []Row { return rows(ss, Sale.Row) }

func rows[T any](in []T, conv func(T) Row) []Row {
	out := make([]Row, 0, len(in))
	for _, r := range in {
		out = append(out, conv(r))
	}
	return out
}
