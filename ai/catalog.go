// catalog.go holds every user-facing sentence in English and Spanish.
//
// Each entry is a format string run through an x/text/message printer
// for the target language, so numbers in a Spanish answer use Spanish
// separators. An answer never mixes the two languages.
package ai

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type msg struct{ en, es string }

func (m msg) in(l Language) string {
	if l == Spanish {
		return m.es
	}
	return m.en
}

// f formats the entry for the given language.
func (m msg) f(l Language, args ...interface{}) string {
	return printer(l).Sprintf(m.in(l), args...)
}

var (
	printerEN = message.NewPrinter(language.English)
	printerES = message.NewPrinter(language.Spanish)
)

func printer(l Language) *message.Printer {
	if l == Spanish {
		return printerES
	}
	return printerEN
}

// Geo
var (
	geoExplanation = msg{
		"I used the **Google Maps MCP** to project your sales onto the Madrid map. The size of the bubbles represents revenue volume.",
		"He utilizado el **Google Maps MCP** para proyectar tus ventas sobre el mapa de Madrid. El tamaño de las burbujas representa el volumen de facturación.",
	}
	geoAnalysis = msg{
		"Geospatial Analysis:\n- **Top Performing Region**: %s ($%.2f).\n- **Distribution**: Sales are concentrated in central and northern districts.\n- **Strategy**: Consider targeted marketing in the southern districts to boost presence.",
		"Análisis Geoespacial:\n- **Región con Mayor Rendimiento**: %s ($%.2f).\n- **Distribución**: Las ventas se concentran en distritos centro y norte.\n- **Estrategia**: Considerar marketing focalizado en los distritos del sur para aumentar la presencia.",
	}
	geoAnalysisEmpty = msg{
		"Geospatial Analysis:\n- No sale could be matched to a customer region.",
		"Análisis Geoespacial:\n- Ninguna venta pudo asociarse a una región de cliente.",
	}
	geoLabel   = msg{"%s: $%.2f", "%s: $%.2f"}
	geoTitle   = msg{"Geographic Distribution (Madrid)", "Distribución Geográfica (Madrid)"}
	geoContext = msg{"Rendered Map: Madrid, Spain.", "Mapa renderizado: Madrid, España."}
)

// Currency
var (
	currencyExplanation = msg{
		"I calculated your total revenue and used the **Forex MCP** to convert it into multiple currencies using today's rates.",
		"He calculado tus ingresos totales y he utilizado el **Forex MCP** para convertirlos a múltiples divisas con las tasas de hoy.",
	}
	currencyAnalysis = msg{
		"Currency Impact:\n- **Base Revenue**: $%.2f\n- **EUR Strength**: The Euro conversion indicates strong purchasing power parity.\n- **MXN Volatility**: Rate used (%.2f) is stable compared to last week.",
		"Impacto Cambiario:\n- **Ingreso Base**: $%.2f\n- **Fortaleza EUR**: La conversión a Euro indica paridad de poder adquisitivo fuerte.\n- **Volatilidad MXN**: La tasa usada (%.2f) es estable comparada con la semana pasada.",
	}
	currencyBase    = msg{"USD (Base)", "USD (Base)"}
	currencyTitle   = msg{"Revenue in Different Currencies", "Ingresos en Diferentes Divisas"}
	currencyContext = msg{"Rates updated: 1 USD = %.2f EUR.", "Tasas actualizadas: 1 USD = %.2f EUR."}
)

// Payment
var (
	paymentExplanation = msg{
		"I crossed your internal sales records with the **Stripe MCP** to verify the real fund status.",
		"He cruzado tus registros de ventas internos con el **Stripe MCP** para verificar el estado real de los fondos.",
	}
	paymentAnalysis = msg{
		"Risk & Liquidity Report:\n- **Pending Transactions**: %d require attention.\n- **Average Risk Score**: Low.\n- **Recommendation**: Verify 'Pending' statuses manually in the Stripe Dashboard.",
		"Reporte de Riesgo y Liquidez:\n- **Transacciones Pendientes**: %d requieren atención.\n- **Puntaje de Riesgo Promedio**: Bajo.\n- **Recomendación**: Verificar estados 'Pendientes' manualmente en el Dashboard de Stripe.",
	}
	paymentContext = msg{"Real-time status check complete.", "Verificación de estado en tiempo real completada."}
)

// Correlation
var (
	correlationExplanation = msg{
		"Comparing your internal sales against Bitcoin price using the **Alpha Vantage MCP**.",
		"Comparando tus ventas internas contra el precio de Bitcoin usando el **Alpha Vantage MCP**.",
	}
	correlationAnalysis = msg{
		"Correlation Analysis:\n- **Coefficient**: +%.2f (Positive Correlation).\n- **Insight**: Your sales seem to increase when the crypto market is bullish. This might indicate your customer base is tech-savvy or holds crypto assets.",
		"Análisis de Correlación:\n- **Coeficiente**: +%.2f (Correlación Positiva).\n- **Insight**: Tus ventas parecen aumentar cuando el mercado cripto está al alza. Esto podría indicar que tu base de clientes es experta en tecnología.",
	}
	correlationSeries = msg{"Your Sales ($)", "Tus Ventas ($)"}
	correlationTitle  = msg{"Sales Correlation with Bitcoin", "Correlación de Ventas con Bitcoin"}
	correlationAxis   = msg{"Sales Volume", "Volumen Ventas"}
	correlationAxis2  = msg{"BTC Price", "Precio BTC"}
	correlationCtx    = msg{"Market data retrieved.", "Datos de mercado recuperados."}
)

// Trend
var (
	trendExplanation = msg{
		"I analyzed your internal sales and used the **Brave Search MCP** to search for external market context.",
		"He analizado tus ventas internas y he utilizado el **Brave Search MCP** para buscar contexto de mercado externo.",
	}
	trendAnalysis = msg{
		"Market Benchmark:\n- **Your Trend**: Steady growth in Q2.\n- **Global Market**: Retail is growing at %.1f%%.\n- **Verdict**: You are outperforming the industry average by approximately %.0f%% based on recent transaction volume.",
		"Benchmark de Mercado:\n- **Tu Tendencia**: Crecimiento sostenido en Q2.\n- **Mercado Global**: Retail crece al %.1f%%.\n- **Veredicto**: Estás superando el promedio de la industria en aproximadamente un %.0f%% basado en el volumen reciente.",
	}
	trendTitle   = msg{"Internal Sales vs Market Trend", "Ventas Internas vs Tendencia Mercado"}
	trendContext = msg{"Retail market trends 2025.", "Tendencias mercado retail 2025."}
)

// Export
var (
	exportExplanation = msg{
		"✅ I used the **Filesystem MCP** to generate the report.",
		"✅ He utilizado el **Filesystem MCP** para generar el reporte.",
	}
	exportAnalysis = msg{
		"File Operation:\n- **Path**: %s\n- **Format**: CSV (UTF-8)\n- **Security**: File permissions set to read-only for group 'sales'.",
		"Operación de Archivo:\n- **Ruta**: %s\n- **Formato**: CSV (UTF-8)\n- **Seguridad**: Permisos establecidos en solo lectura para grupo 'ventas'.",
	}
	exportContext = msg{"File saved successfully.", "Archivo guardado exitosamente."}
)

// Schema design
var (
	schemaExplanation = msg{
		"Here is the optimized PostgreSQL architecture based on your CSVs and the ETL load script.",
		"Aquí tienes la arquitectura optimizada para PostgreSQL basada en tus CSVs y el script de carga ETL.",
	}
	schemaAnalysis = msg{
		"Schema Analysis:\n- **Normalization**: 3rd Normal Form achieved.\n- **Optimization**: Added indexes on `customer_id` and `date` to speed up reporting queries by 40%.\n- **Integrity**: Foreign keys enforcement enabled.",
		"Análisis del Esquema:\n- **Normalización**: 3ra Forma Normal alcanzada.\n- **Optimización**: Índices añadidos en `customer_id` y `date` para acelerar reportes un 40%.\n- **Integridad**: Claves foráneas activadas.",
	}
	schemaTitle = msg{"Total Sales by Category", "Ventas Totales por Categoría"}
)

// Employees
var (
	employeeExplanation     = msg{"Fetching general employee list.", "Obteniendo lista general de empleados."}
	employeeExplanationDesc = msg{"Showing top employees by salary (Descending).", "Mostrando empleados con mayor salario (Descendente)."}
	employeeExplanationAsc  = msg{"Showing lowest paid employees (Ascending).", "Mostrando empleados con menor salario (Ascendente)."}
	employeeTitle           = msg{"Employee Salaries", "Salarios de Empleados"}
	employeeTitleDesc       = msg{"Top %d Highest Salaries", "Top %d Salarios Más Altos"}
	employeeTitleAsc        = msg{"Bottom %d Salaries", "Top %d Salarios Más Bajos"}
	employeeAnalysis        = msg{"Showing standard list.", "Mostrando lista estándar."}
	employeeAnalysisDesc    = msg{
		"Payroll Insight:\n- **Highest Earner**: %s ($%.2f).\n- **Gap**: The top earner makes %.1fx more than the lowest.",
		"Insight de Nómina:\n- **Mayor Salario**: %s ($%.2f).\n- **Brecha**: El salario más alto es %.1fx mayor que el más bajo.",
	}
	employeeAnalysisAsc = msg{
		"Payroll Insight:\n- **Lowest Earner**: %s ($%.2f).\n- **Spread**: The highest salary in this bracket is %.1fx the lowest.\n- Operational staff detected at the bottom of the bracket.",
		"Insight de Nómina:\n- **Menor Salario**: %s ($%.2f).\n- **Dispersión**: El salario más alto de esta franja es %.1fx el más bajo.\n- Personal operativo detectado en la parte baja de la franja.",
	}
)

// Products
var (
	productExplanation     = msg{"Fetching product list.", "Obteniendo lista de productos."}
	productExplanationDesc = msg{"List of most expensive products (Descending).", "Lista de productos más caros (Descendente)."}
	productExplanationAsc  = msg{"List of cheapest products (Ascending).", "Lista de productos más baratos (Ascendente)."}
	productTitle           = msg{"Product Prices", "Precios de Productos"}
	productTitleDesc       = msg{"Top %d Most Expensive Products", "Top %d Productos Más Caros"}
	productTitleAsc        = msg{"Top %d Cheapest Products", "Top %d Productos Más Baratos"}
	productAnalysis        = msg{"Catalog Overview.", "Resumen del catálogo."}
	productAnalysisDesc    = msg{
		"Pricing Strategy:\n- **Premium Item**: %s ($%.2f).\n- **Price Gap**: $%.2f above %s.\n- **Margin Potential**: High on top 3 items.",
		"Estrategia de Precios:\n- **Ítem Premium**: %s ($%.2f).\n- **Brecha de Precio**: $%.2f sobre %s.\n- **Potencial de Margen**: Alto en los 3 primeros.",
	}
	productAnalysisAsc = msg{
		"Entry-level inventory identified:\n- **Cheapest Item**: %s ($%.2f).\n- **Price Gap**: $%.2f below %s.",
		"Inventario de entrada identificado:\n- **Ítem Más Barato**: %s ($%.2f).\n- **Brecha de Precio**: $%.2f por debajo de %s.",
	}
	toyExplanation = msg{"Filtering products by category '%s'.", "Filtrando productos por categoría '%s'."}
	toyAnalysis    = msg{
		"Category Analysis (Toys):\n- **Count**: %d items.\n- **Avg Price**: $%.2f.",
		"Análisis de Categoría (Juguetes):\n- **Cantidad**: %d ítems.\n- **Precio Promedio**: $%.2f.",
	}
	toyTitle = msg{"Toy Prices", "Precios de Juguetes"}
)

// Sales
var (
	saleTotalExplanation = msg{"Aggregating total sales revenue.", "Agregando ingresos totales por ventas."}
	saleTotalAnalysis    = msg{
		"Financial Summary:\n- **Total Revenue**: $%.2f\n- **Transaction Volume**: %d sales recorded.\n- **Avg Ticket**: $%.2f.",
		"Resumen Financiero:\n- **Ingresos Totales**: $%.2f\n- **Volumen**: %d ventas registradas.\n- **Ticket Promedio**: $%.2f.",
	}
	saleTotalTitle   = msg{"Revenue Distribution", "Distribución de Ingresos"}
	saleTotalRevenue = msg{"Revenue", "Ingresos"}
	saleTotalCost    = msg{"Est. Cost", "Costo Est."}
	saleTotalProfit  = msg{"Profit", "Beneficio"}

	saleExplanation     = msg{"Showing recent sales transactions.", "Mostrando transacciones de ventas recientes."}
	saleExplanationDesc = msg{"Top sales transactions by value (High to Low).", "Mejores transacciones por valor (Alto a Bajo)."}
	saleExplanationAsc  = msg{"Lowest sales transactions by value (Low to High).", "Transacciones de menor valor (Bajo a Alto)."}
	saleTitle           = msg{"Recent Sales Values", "Valores de Ventas Recientes"}
	saleTitleDesc       = msg{"Top %d Highest Value Sales", "Top %d Ventas de Mayor Valor"}
	saleTitleAsc        = msg{"Bottom %d Lowest Value Sales", "Top %d Ventas de Menor Valor"}
	saleLabel           = msg{"Sale #%d (%s)", "Venta #%d (%s)"}
	saleAnalysis        = msg{"Latest transactional activity.", "Actividad transaccional reciente."}
	saleAnalysisDesc    = msg{
		"Key Account Activity identified in top transactions:\n- **Largest Sale**: #%d ($%.2f).\n- **Spread**: %.1fx the smallest sale shown.",
		"Actividad de Cuentas Clave identificada en las transacciones superiores:\n- **Mayor Venta**: #%d ($%.2f).\n- **Dispersión**: %.1fx la menor venta mostrada.",
	}
	saleAnalysisAsc = msg{
		"Micro-transactions detected:\n- **Smallest Sale**: #%d ($%.2f).\n- **Spread**: the largest sale shown is %.1fx this one.",
		"Micro-transacciones detectadas:\n- **Menor Venta**: #%d ($%.2f).\n- **Dispersión**: la mayor venta mostrada es %.1fx esta.",
	}
)

// Customers
var (
	customerExplanation = msg{"Fetching customer database.", "Obteniendo base de datos de clientes."}
	customerAnalysis    = msg{
		"CRM Snapshot:\n- **Total Customers**: %d.\n- **Geo Coverage**: %d distinct regions.",
		"Snapshot CRM:\n- **Total Clientes**: %d.\n- **Cobertura Geo**: %d regiones distintas.",
	}
)

// Fallback
var (
	fallbackExplanation = msg{
		"I wasn't sure exactly what table you wanted, so here is a sample of your employees.",
		"No estaba seguro de qué tabla querías exactamente, así que aquí hay una muestra de tus empleados.",
	}
	fallbackAnalysis = msg{
		"Ambiguous query. Defaulting to Employee Directory.",
		"Consulta ambigua. Mostrando Directorio de Empleados por defecto.",
	}
)
