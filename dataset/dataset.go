// Package dataset holds the fixed, read-only sample records the assistant
// answers questions about.
//
// Design decisions:
//   - Records are typed structs; rows handed to callers are converted to
//     the tagged Row container so presentation code can dispatch on the
//     value kind instead of inspecting Go types.
//   - Every accessor returns a copy. Callers may sort or truncate freely
//     without touching the process-wide fixtures.
//   - Money fields stay float64 here; aggregation code sums them with
//     shopspring/decimal.
package dataset

import "slices"

// Product is a catalog item.
type Product struct {
	ID        int     `json:"product_id"`
	Name      string  `json:"product_name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
}

// Employee is a staff member.
type Employee struct {
	ID        int     `json:"employee_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  string  `json:"position"`
	Email     string  `json:"email"`
	Salary    float64 `json:"salary"`
}

// FullName returns "First Last".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Customer is a buyer located in a sales region.
type Customer struct {
	ID        int    `json:"customer_id"`
	Region    string `json:"region"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// User is an application account tied to an employee.
type User struct {
	ID         int    `json:"user_id"`
	EmployeeID int    `json:"employee_id"`
	Role       string `json:"role"`
	Email      string `json:"email"`
}

// Sale is a single transaction. Total is always Subtotal - DiscountAmount.
type Sale struct {
	ID                 int     `json:"sale_id"`
	EmployeeID         int     `json:"employee_id"`
	CustomerID         int     `json:"customer_id"`
	ProductID          int     `json:"product_id"`
	Channel            string  `json:"sales_channel"`
	Quantity           int     `json:"quantity"`
	DiscountPercentage float64 `json:"discount_percentage"`
	PaymentMethod      string  `json:"payment_method"`
	Subtotal           float64 `json:"subtotal"`
	DiscountAmount     float64 `json:"discount_amount"`
	Total              float64 `json:"total"`
	Date               string  `json:"date"`
}

// PaymentCash is the payment method label for cash sales.
const PaymentCash = "Efectivo"

// CategoryToys is the category label for toy products.
const CategoryToys = "Juguetes"

var products = []Product{
	{ID: 1, Name: "Organizador Modular", Category: "Hogar", UnitPrice: 355.05},
	{ID: 2, Name: "Drone Infantil", Category: "Juguetes", UnitPrice: 380.52},
	{ID: 3, Name: "Kit de Manualidades", Category: "Juguetes", UnitPrice: 391.14},
	{ID: 4, Name: "Short Deportivo", Category: "Ropa", UnitPrice: 473.37},
	{ID: 5, Name: "Muñeco Articulado", Category: "Juguetes", UnitPrice: 385.09},
	{ID: 6, Name: "Blusa Elegante", Category: "Ropa", UnitPrice: 338.61},
	{ID: 7, Name: "Mouse Inalámbrico", Category: "Electrónica", UnitPrice: 363.50},
	{ID: 8, Name: "Tablet 10 pulgadas", Category: "Electrónica", UnitPrice: 415.74},
	{ID: 100, Name: "Smartwatch Deportivo", Category: "Electrónica", UnitPrice: 450.43},
}

var employees = []Employee{
	{ID: 1, FirstName: "Javier", LastName: "Rivas", Position: "Operario", Email: "jrivas12@empresa.com", Salary: 1299.12},
	{ID: 2, FirstName: "Ana", LastName: "Suárez", Position: "Especialista Marketing", Email: "asuarez32@empresa.com", Salary: 3223.8},
	{ID: 3, FirstName: "Raúl", LastName: "Rivas", Position: "Analista Financiero", Email: "rrivas28@empresa.com", Salary: 2955.45},
	{ID: 4, FirstName: "Raúl", LastName: "Reyes", Position: "Desarrollador", Email: "rreyes73@empresa.com", Salary: 3219.62},
	{ID: 5, FirstName: "Fernando", LastName: "Rodríguez", Position: "Supervisor", Email: "frodriguez82@empresa.com", Salary: 2160.27},
	{ID: 6, FirstName: "Daniela", LastName: "Rodríguez", Position: "Vendedor", Email: "drodriguez12@empresa.com", Salary: 2592.83},
}

var customers = []Customer{
	{ID: 103, Region: "Centro", FirstName: "Roberto", LastName: "Rivas", Email: "roberto.rivas@cliente.com"},
	{ID: 436, Region: "Centro", FirstName: "Marina", LastName: "García", Email: "marina.garcía@cliente.com"},
	{ID: 349, Region: "Centro", FirstName: "Carmen", LastName: "Ramírez", Email: "carmen.ramírez@cliente.com"},
	{ID: 271, Region: "Oeste", FirstName: "Lucía", LastName: "Ramírez", Email: "lucía.ramírez@cliente.com"},
	{ID: 107, Region: "Sur", FirstName: "Diego", LastName: "Ruiz", Email: "diego.ruiz@cliente.com"},
	{ID: 72, Region: "Este", FirstName: "Carlos", LastName: "Torres", Email: "carlos.torres@cliente.com"},
}

var users = []User{
	{ID: 1, EmployeeID: 1, Role: "administrador", Email: "jrivas12@empresa.com"},
	{ID: 2, EmployeeID: 2, Role: "marketing", Email: "asuarez32@empresa.com"},
	{ID: 3, EmployeeID: 3, Role: "marketing", Email: "rrivas28@empresa.com"},
	{ID: 4, EmployeeID: 4, Role: "administrador", Email: "rreyes73@empresa.com"},
	{ID: 6, EmployeeID: 6, Role: "RRHH", Email: "drodriguez12@empresa.com"},
}

var sales = []Sale{
	{ID: 1, EmployeeID: 92, CustomerID: 103, ProductID: 5, Channel: "Tienda física", Quantity: 4, DiscountPercentage: 11.67, PaymentMethod: "Efectivo", Subtotal: 1852.2, DiscountAmount: 216.15, Total: 1636.05, Date: "2024-05-10"},
	{ID: 2, EmployeeID: 45, CustomerID: 436, ProductID: 157, Channel: "Distribuidor", Quantity: 16, DiscountPercentage: 1.23, PaymentMethod: "Efectivo", Subtotal: 7122.72, DiscountAmount: 87.61, Total: 7035.11, Date: "2023-04-01"},
	{ID: 3, EmployeeID: 59, CustomerID: 349, ProductID: 47, Channel: "Distribuidor", Quantity: 17, DiscountPercentage: 13.11, PaymentMethod: "Paypal", Subtotal: 2631.09, DiscountAmount: 344.94, Total: 2286.15, Date: "2025-05-29"},
	{ID: 4, EmployeeID: 38, CustomerID: 271, ProductID: 68, Channel: "Tienda física", Quantity: 9, DiscountPercentage: 0.17, PaymentMethod: "Efectivo", Subtotal: 447.48, DiscountAmount: 0.76, Total: 446.72, Date: "2025-08-12"},
	{ID: 5, EmployeeID: 32, CustomerID: 107, ProductID: 76, Channel: "Online", Quantity: 6, DiscountPercentage: 15.6, PaymentMethod: "Tarjeta", Subtotal: 414.96, DiscountAmount: 64.73, Total: 350.23, Date: "2024-11-02"},
}

// Products returns a copy of the product fixtures.
func Products() []Product { return slices.Clone(products) }

// Employees returns a copy of the employee fixtures.
func Employees() []Employee { return slices.Clone(employees) }

// Customers returns a copy of the customer fixtures.
func Customers() []Customer { return slices.Clone(customers) }

// Users returns a copy of the user fixtures.
func Users() []User { return slices.Clone(users) }

// Sales returns a copy of the sale fixtures.
func Sales() []Sale { return slices.Clone(sales) }

// CustomerByID resolves a customer id.
func CustomerByID(id int) (Customer, bool) {
	i := slices.IndexFunc(customers, func(c Customer) bool { return c.ID == id })
	if i < 0 {
		return Customer{}, false
	}
	return customers[i], true
}

// ProductByID resolves a product id.
func ProductByID(id int) (Product, bool) {
	i := slices.IndexFunc(products, func(p Product) bool { return p.ID == id })
	if i < 0 {
		return Product{}, false
	}
	return products[i], true
}

// EmployeeByID resolves an employee id.
func EmployeeByID(id int) (Employee, bool) {
	i := slices.IndexFunc(employees, func(e Employee) bool { return e.ID == id })
	if i < 0 {
		return Employee{}, false
	}
	return employees[i], true
}

// Unresolved describes a sale whose foreign keys point outside the
// sample tables.
type Unresolved struct {
	SaleID     int
	EmployeeID int // 0 when the employee resolves
	ProductID  int // 0 when the product resolves
	CustomerID int // 0 when the customer resolves
}

// UnresolvedSales lists every sale with at least one dangling reference.
// Joins against these sales miss silently; this report exists so the gap
// stays visible.
func UnresolvedSales() []Unresolved {
	var out []Unresolved
	for _, s := range sales {
		u := Unresolved{SaleID: s.ID}
		if _, ok := EmployeeByID(s.EmployeeID); !ok {
			u.EmployeeID = s.EmployeeID
		}
		if _, ok := ProductByID(s.ProductID); !ok {
			u.ProductID = s.ProductID
		}
		if _, ok := CustomerByID(s.CustomerID); !ok {
			u.CustomerID = s.CustomerID
		}
		if u.EmployeeID != 0 || u.ProductID != 0 || u.CustomerID != 0 {
			out = append(out, u)
		}
	}
	return out
}
