package responder

import "github.com/rcliao/offline-assist/internal/model"

var genericResponses = map[string]string{
	model.English: "Sorry, I couldn't find an answer to that. Try rephrasing your question, or ask again when you're back online.",
	model.Tagalog: "Paumanhin, wala akong mahanap na sagot diyan. Subukang ibahin ang tanong, o magtanong muli kapag online ka na.",
	model.Bisaya:  "Pasayloa, wala koy nakit-an nga tubag ana. Sulayi og usab ang pangutana, o pangutana pag-usab kung online na ka.",
	model.Waray:   "Pasayloa, waray ako nakita nga baton hito. Testinga igbag-o an pakiana, o pakiana utro kon online ka na.",
	model.Spanish: "Lo siento, no encontré una respuesta para eso. Intenta reformular tu pregunta o vuelve a preguntar cuando tengas conexión.",
}

// GenericResponse returns the localized no-answer reply. Unsupported
// languages get the English text.
func GenericResponse(language string) string {
	if s, ok := genericResponses[NormalizeLanguage(language)]; ok {
		return s
	}
	return genericResponses[model.English]
}
