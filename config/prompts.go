// prompts.go manages the business prompt library.
//
// The library is stored in ~/.paibi/prompts.json. A missing file yields
// the stock library, so a fresh install has suggestions to pick from.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Prompt is a named, saveable suggested question.
type Prompt struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	TitleEN  string `json:"title_en"`
	TitleES  string `json:"title_es"`
	Text     string `json:"prompt"`
}

// Title returns the display title for a language tag, falling back to
// the English title and then to the name.
func (p Prompt) Title(lang string) string {
	if lang == "es" && p.TitleES != "" {
		return p.TitleES
	}
	if p.TitleEN != "" {
		return p.TitleEN
	}
	return p.Name
}

// PromptStore manages saved prompts on disk.
type PromptStore struct {
	path    string
	Prompts []Prompt `json:"prompts"`
}

// NewPromptStore creates a store, loading from ~/.paibi/prompts.json.
func NewPromptStore() (*PromptStore, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return NewPromptStoreAt(filepath.Join(dir, "prompts.json"))
}

// NewPromptStoreAt creates a store backed by path.
func NewPromptStoreAt(path string) (*PromptStore, error) {
	store := &PromptStore{path: path}

	data, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			store.Prompts = DefaultPrompts()
			return store, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("parse prompts: %w", err)
	}

	return store, nil
}

// Save writes all prompts to disk.
func (s *PromptStore) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Add adds or updates a prompt by name.
func (s *PromptStore) Add(p Prompt) {
	for i, c := range s.Prompts {
		if c.Name == p.Name {
			s.Prompts[i] = p
			return
		}
	}
	s.Prompts = append(s.Prompts, p)
}

// Delete removes a prompt by name and reports whether it existed.
func (s *PromptStore) Delete(name string) bool {
	for i, c := range s.Prompts {
		if c.Name == name {
			s.Prompts = append(s.Prompts[:i], s.Prompts[i+1:]...)
			return true
		}
	}
	return false
}

// Get retrieves a prompt by name.
func (s *PromptStore) Get(name string) (Prompt, bool) {
	for _, c := range s.Prompts {
		if c.Name == name {
			return c, true
		}
	}
	return Prompt{}, false
}

// DefaultPrompts returns the stock library.
func DefaultPrompts() []Prompt {
	return []Prompt{
		{"convert-currency", "Financial MCP", "Convert Currency", "Convertir Divisa", "Convert total revenue to EUR and MXN (Forex MCP)"},
		{"sales-map", "Geo MCP", "Sales Map", "Mapa de Ventas", "Show me a map of sales by region (Google Maps MCP)"},
		{"payment-status", "Financial MCP", "Payment Status", "Estado Pagos", "Check Stripe status for recent sales"},
		{"crypto-correlation", "Financial MCP", "Crypto Correlation", "Cripto Análisis", "Compare my sales trend with Bitcoin price"},
		{"market-trends", "External MCP", "Market Trends", "Tendencias Mercado", "Compare my sales with global market trends (Brave Search)"},
		{"export-report", "System MCP", "Export Report", "Exportar Reporte", "Export current sales report to CSV on local disk"},
		{"postgres-schema", "Architecture", "Postgres Schema", "Esquema Postgres", "Diseña un esquema de base de datos optimizado en PostgreSQL y graficalo"},
		{"revenue-overview", "Analytics", "Revenue Overview", "Resumen Ingresos", "Calculate total revenue statistics and distribution"},
		{"category-toys", "Inventory", "Category: Juguetes", "Cat: Juguetes", "Show me all products in Juguetes category with prices"},
		{"customer-region", "CRM", "Customer Region", "Región Clientes", "List customers from the 'Centro' region"},
		{"highest-salaries", "HR - High", "Highest Salaries", "Salarios Altos", "Show me the top 5 employees by salary (Descending)"},
		{"entry-salaries", "HR - Low", "Entry Level Salaries", "Salarios Bajos", "Show me the bottom 5 employees by salary (Ascending)"},
		{"top-transactions", "Sales - High", "Top Transactions", "Top Transacciones", "Show top 5 sales transactions by total value"},
		{"most-expensive", "Products - High", "Most Expensive", "Más Caros", "List the top 5 most expensive products"},
		{"sales-channels", "Strategy", "Sales Channels", "Canales Venta", "Analyze sales distribution by channel (Online vs Physical)"},
		{"vip-customers", "CRM", "VIP Customers", "Clientes VIP", "List the top 5 customers by total purchase volume"},
		{"top-performers", "HR - Performance", "Top Performers", "Mejores Empleados", "Identify employees with the highest generated revenue"},
	}
}
