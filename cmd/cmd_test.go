package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/DachengChen/paiBI/config"
)

// run executes the root command against a throwaway home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAIBI_QUERY_LATENCY_MS", "0")
	t.Setenv("PAIBI_TABLE_LATENCY_MS", "0")

	resetLang()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetLang forgets a --lang given to an earlier run.
func resetLang() {
	langFlag = ""
	rootCmd.PersistentFlags().Lookup("lang").Changed = false
}

func TestAskJSON(t *testing.T) {
	out, err := run(t, "ask", "--lang", "en", "-o", "json", "Calculate", "total", "revenue", "statistics")
	require.NoError(t, err)
	assert.Equal(t, "sale_total", gjson.Get(out, "topic").String())
	assert.Equal(t, 11754.26, gjson.Get(out, "rows.0.total_revenue").Float())
	assert.Equal(t, "pie", gjson.Get(out, "chartConfig.data.0.type").String())
}

func TestAskYAML(t *testing.T) {
	out, err := run(t, "ask", "--lang", "es", "-o", "yaml", "show customers")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "customer", doc["topic"])
	assert.Len(t, doc["rows"], 6)
	assert.Contains(t, doc["explanation"], "clientes")
}

func TestAskText(t *testing.T) {
	out, err := run(t, "ask", "--lang", "en", "-o", "text", "Show me the top 5 employees by salary")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing top employees by salary")
	assert.Contains(t, out, "ORDER BY salary DESC")
	assert.Contains(t, out, "Suárez")
	assert.Contains(t, out, "first_name")
}

func TestAskBadFormat(t *testing.T) {
	_, err := run(t, "ask", "--lang", "en", "-o", "xml", "hello")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestTables(t *testing.T) {
	out, err := run(t, "tables", "-o", "text", "--filter", "")
	require.NoError(t, err)
	for _, name := range []string{"products", "employees", "customers", "sales", "users"} {
		assert.Contains(t, out, name)
	}

	out, err = run(t, "tables", "customers", "-o", "json", "--filter", "centro")
	require.NoError(t, err)
	assert.Equal(t, int64(3), gjson.Get(out, "rows.#").Int())

	out, err = run(t, "tables", "inventory", "-o", "text", "--filter", "")
	require.NoError(t, err)
	assert.Contains(t, out, `no table named "inventory"`)
}

func TestPromptsLifecycle(t *testing.T) {
	home := t.TempDir()
	exec := func(args ...string) string {
		t.Helper()
		t.Setenv("HOME", home)
		resetLang()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(args)
		require.NoError(t, rootCmd.Execute())
		return out.String()
	}

	out := exec("prompts", "list", "-o", "json")
	assert.Equal(t, int64(len(config.DefaultPrompts())), gjson.Get(out, "#").Int())

	exec("prompts", "add", "regions", "Show me a map of sales by region", "--category", "Geo", "--title", "Regions")
	_, err := os.Stat(filepath.Join(home, ".paibi", "prompts.json"))
	require.NoError(t, err)

	out = exec("prompts", "list", "-o", "json")
	assert.Equal(t, "Show me a map of sales by region", gjson.Get(out, `#(name=="regions").prompt`).String())

	exec("prompts", "rm", "regions")
	out = exec("prompts", "list", "-o", "json")
	assert.False(t, gjson.Get(out, `#(name=="regions")`).Exists())
}

func TestSeedSchemaOnly(t *testing.T) {
	out, err := run(t, "seed", "--schema-only")
	require.NoError(t, err)
	assert.Contains(t, out, "CREATE TABLE IF NOT EXISTS products")
	assert.Contains(t, out, "idx_sales_date")
}

func TestInvalidLanguageFromEnv(t *testing.T) {
	t.Setenv("PAIBI_LANG", "fr")
	_, err := run(t, "tables", "-o", "text", "--filter", "")
	assert.ErrorContains(t, err, "invalid config")
}
