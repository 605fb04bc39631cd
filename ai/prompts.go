package ai

// Canned chat texts shown by the front ends.

var introText = msg{
	"Hello! I'm your SQL analytics assistant. I can help design database schemas, query your sales data, or visualize trends.\n\n" +
		"Simulated integrations: **Brave Search**, **Stripe**, **Forex API**, **Google Maps** and **Filesystem**.",
	"¡Hola! Soy tu asistente de analítica SQL. Puedo ayudarte a diseñar esquemas, consultar datos de ventas o visualizar tendencias.\n\n" +
		"Integraciones simuladas: **Brave Search**, **Stripe**, **Forex API**, **Google Maps** y **Filesystem**.",
}

var errorText = msg{
	"I encountered an error trying to process that request.",
	"Encontré un error al intentar procesar esa solicitud.",
}

var defaultReply = msg{"Here are the results:", "Aquí están los resultados:"}

// Intro returns the greeting shown when a chat opens.
func Intro(lang Language) string { return introText.in(lang) }

// ErrorReply returns the generic failure message.
func ErrorReply(lang Language) string { return errorText.in(lang) }

// Reply returns the chat text for an answer: its explanation, or a
// generic lead-in when there is none.
func Reply(r *QueryResult, lang Language) string {
	if r != nil && r.Explanation != "" {
		return r.Explanation
	}
	return defaultReply.in(lang)
}
