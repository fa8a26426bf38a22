// Package corpus holds the built-in question/answer table seeded into a
// fresh store on first run.
package corpus

import "github.com/rcliao/offline-assist/internal/model"

// Categories in the built-in corpus.
const (
	Greeting = "greeting"
	WiFi     = "wifi"
	Password = "password"
	Account  = "account"
	AppHelp  = "app_help"
	Contact  = "contact"
)

func entry(category, language string, confidence float64, question, answer string, keywords ...string) model.Entry {
	return model.Entry{
		Category:   category,
		Language:   language,
		Keywords:   keywords,
		Question:   question,
		Answer:     answer,
		Confidence: confidence,
	}
}

// Entries returns a fresh copy of the built-in corpus.
func Entries() []model.Entry {
	out := make([]model.Entry, 0, len(english)+len(tagalog)+len(bisaya)+len(waray)+len(spanish))
	for _, set := range [][]model.Entry{english, tagalog, bisaya, waray, spanish} {
		for _, e := range set {
			e.Keywords = append([]string(nil), e.Keywords...)
			out = append(out, e)
		}
	}
	return out
}

var english = []model.Entry{
	entry(Greeting, model.English, 0.95,
		"Hello",
		"Hello! I'm your assistant. Ask me about WiFi, passwords, your account, or how to use the app.",
		"hello", "good morning", "good day"),
	entry(WiFi, model.English, 0.9,
		"My WiFi is not working",
		"Try these steps: 1) Turn WiFi off and on again. 2) Restart your router by unplugging it for 30 seconds. 3) Move closer to the router. 4) Forget the network and reconnect with the correct password.",
		"wifi", "internet", "connection"),
	entry(Password, model.English, 0.9,
		"I forgot my password",
		"Tap \"Forgot password\" on the login screen and enter your registered email. A reset link will arrive within a few minutes. Check your spam folder if it does not.",
		"forgot", "password", "reset"),
	entry(Account, model.English, 0.85,
		"How do I update my account?",
		"Open the menu, choose Profile, then tap Edit. You can change your name, email, and phone number there. Save to apply the changes.",
		"account", "profile", "personal details"),
	entry(AppHelp, model.English, 0.8,
		"How do I use the app?",
		"Type or speak your question on the chat screen and press Send. When you are offline I answer from a built-in guide, so some answers may be shorter.",
		"how to use", "the app", "application"),
	entry(Contact, model.English, 0.85,
		"How can I contact support?",
		"You can reach support from the Help screen or by email. Include a short description of the problem and a screenshot if possible.",
		"contact", "support", "email"),
}

var tagalog = []model.Entry{
	entry(Greeting, model.Tagalog, 0.95,
		"Kumusta",
		"Kumusta! Ako ang iyong assistant. Magtanong tungkol sa WiFi, password, account, o paggamit ng app.",
		"kumusta", "magandang umaga", "magandang araw"),
	entry(WiFi, model.Tagalog, 0.9,
		"Hindi gumagana ang WiFi ko",
		"Subukan ang mga ito: 1) Patayin at buksan muli ang WiFi. 2) I-restart ang router sa pag-unplug nito nang 30 segundo. 3) Lumapit sa router. 4) Kalimutan ang network at kumonekta muli gamit ang tamang password.",
		"wifi", "internet", "koneksyon"),
	entry(Password, model.Tagalog, 0.9,
		"Nakalimutan ko ang password ko",
		"Pindutin ang \"Forgot password\" sa login screen at ilagay ang iyong email. Darating ang reset link sa loob ng ilang minuto. Tingnan din ang spam folder.",
		"nakalimutan", "password"),
	entry(Account, model.Tagalog, 0.85,
		"Paano baguhin ang account ko?",
		"Buksan ang menu, piliin ang Profile, at pindutin ang Edit. Maaari mong palitan ang pangalan, email, at numero. I-save para mailapat.",
		"account", "profile", "baguhin ang pangalan"),
	entry(AppHelp, model.Tagalog, 0.8,
		"Paano gamitin ang app?",
		"I-type o sabihin ang tanong sa chat screen at pindutin ang Send. Kapag offline, sumasagot ako mula sa built-in na gabay.",
		"paano gamitin", "gamitin ang app", "tulong sa app"),
	entry(Contact, model.Tagalog, 0.85,
		"Paano makipag-ugnayan sa support?",
		"Makipag-ugnayan sa support mula sa Help screen o sa email. Isama ang maikling paliwanag ng problema.",
		"support", "makipag-ugnayan"),
}

var bisaya = []model.Entry{
	entry(Greeting, model.Bisaya, 0.95,
		"Kumusta",
		"Kumusta! Ako ang imong assistant. Pangutana bahin sa WiFi, password, account, o paggamit sa app.",
		"kumusta", "maayong buntag", "maayong adlaw"),
	entry(WiFi, model.Bisaya, 0.9,
		"Dili mogana akong WiFi",
		"Sulayi kini: 1) Patya ug ablihi pag-usab ang WiFi. 2) I-restart ang router pinaagi sa pag-unplug og 30 segundos. 3) Duol sa router. 4) Kalimti ang network ug konektar pag-usab.",
		"wifi", "internet", "koneksyon"),
	entry(Password, model.Bisaya, 0.9,
		"Nakalimot ko sa akong password",
		"Pindota ang \"Forgot password\" sa login screen ug isulod ang imong email. Moabot ang reset link sulod sa pipila ka minuto.",
		"nakalimot", "password"),
	entry(Account, model.Bisaya, 0.85,
		"Unsaon pag-usab sa akong account?",
		"Ablihi ang menu, pilia ang Profile, unya pindota ang Edit. Mahimo nimong usbon ang ngalan, email, ug numero.",
		"account", "profile", "usbon ang ngalan"),
	entry(AppHelp, model.Bisaya, 0.8,
		"Unsaon paggamit sa app?",
		"I-type o isulti ang imong pangutana sa chat screen ug pindota ang Send. Kung offline, motubag ko gikan sa built-in nga giya.",
		"unsaon paggamit", "paggamit sa app", "tabang sa app"),
	entry(Contact, model.Bisaya, 0.85,
		"Unsaon pagkontak sa support?",
		"Kontaka ang support gikan sa Help screen o pinaagi sa email. Ilakip ang mubo nga paghulagway sa problema.",
		"support", "kontak"),
}

var waray = []model.Entry{
	entry(Greeting, model.Waray, 0.95,
		"Maupay nga adlaw",
		"Maupay nga adlaw! Ako an imo assistant. Pakiana mahitungod han WiFi, password, account, o paggamit han app.",
		"maupay nga aga", "maupay nga adlaw", "kumusta"),
	entry(WiFi, model.Waray, 0.9,
		"Diri nagana an akon WiFi",
		"Testinga ini: 1) Patya ngan buksi utro an WiFi. 2) I-restart an router. 3) Umaghani ha router. 4) Kalimti an network ngan konektar utro.",
		"wifi", "internet", "koneksyon"),
	entry(Password, model.Waray, 0.9,
		"Nahikalimtan ko an akon password",
		"Pindota an \"Forgot password\" ha login screen ngan ibutang an imo email. Maabot an reset link ha sulod hin pipira ka minuto.",
		"nahikalimtan", "password"),
	entry(Account, model.Waray, 0.85,
		"Paonan-o pagbag-o han akon account?",
		"Bukasa an menu, pilia an Profile, ngan pindota an Edit. Mahimo mo bag-ohon an ngaran, email, ngan numero.",
		"account", "profile", "bag-ohon an ngaran"),
	entry(AppHelp, model.Waray, 0.8,
		"Paonan-o paggamit han app?",
		"I-type o isiring an imo pakiana ha chat screen ngan pindota an Send. Kon offline, nabaton ako tikang ha built-in nga giya.",
		"paonan-o paggamit", "paggamit han app", "bulig han app"),
	entry(Contact, model.Waray, 0.85,
		"Paonan-o pagkontak ha support?",
		"Kontaka an support tikang ha Help screen o ha email.",
		"support", "kontak"),
}

var spanish = []model.Entry{
	entry(Greeting, model.Spanish, 0.95,
		"Hola",
		"¡Hola! Soy tu asistente. Pregúntame sobre WiFi, contraseñas, tu cuenta o cómo usar la aplicación.",
		"hola", "buenos días", "buenas tardes"),
	entry(WiFi, model.Spanish, 0.9,
		"Mi WiFi no funciona",
		"Prueba estos pasos: 1) Apaga y enciende el WiFi. 2) Reinicia el router desconectándolo 30 segundos. 3) Acércate al router. 4) Olvida la red y vuelve a conectarte.",
		"wifi", "internet", "conexión"),
	entry(Password, model.Spanish, 0.9,
		"Olvidé mi contraseña",
		"Toca \"Olvidé mi contraseña\" en la pantalla de inicio de sesión e ingresa tu correo. Recibirás un enlace en unos minutos.",
		"olvidé", "contraseña"),
	entry(Account, model.Spanish, 0.85,
		"¿Cómo actualizo mi cuenta?",
		"Abre el menú, elige Perfil y toca Editar. Puedes cambiar tu nombre, correo y teléfono.",
		"cuenta", "perfil", "actualizar"),
	entry(AppHelp, model.Spanish, 0.8,
		"¿Cómo uso la aplicación?",
		"Escribe o di tu pregunta en la pantalla de chat y pulsa Enviar. Sin conexión respondo desde una guía integrada.",
		"cómo uso", "usar la aplicación", "ayuda con la aplicación"),
	entry(Contact, model.Spanish, 0.85,
		"¿Cómo contacto al soporte?",
		"Puedes contactar al soporte desde la pantalla de Ayuda o por correo.",
		"soporte", "contacto"),
}
