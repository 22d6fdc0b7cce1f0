package language

import "salescall/internal/model"

// Marker vocabulary per language: common function words and greetings a
// caller is likely to use, plus a small place-name gazetteer. The tables are
// package data loaded once into a Detector at startup; nothing mutates them,
// so concurrent reads are safe.
var markerWords = map[model.LanguageCode][]string{
	"en": {
		"hello", "hi", "good", "morning", "afternoon", "thanks", "thank",
		"you", "yes", "the", "and", "i", "we", "please", "would", "like",
		"want", "need", "order", "receipt", "rolls", "delivery", "price",
	},
	"fr": {
		"bonjour", "bonsoir", "salut", "merci", "oui", "non", "je", "tu",
		"vous", "nous", "le", "la", "les", "un", "une", "des", "est", "et",
		"voudrais", "veux", "s'il", "plaît", "commander", "livraison",
		"rouleaux", "caisse", "prix",
	},
	"nl": {
		"hallo", "goedemorgen", "goedemiddag", "goedenavond", "dank",
		"bedankt", "ja", "nee", "ik", "jij", "u", "wij", "het", "een",
		"en", "wil", "graag", "alstublieft", "bestellen", "levering",
		"rollen", "kassa", "prijs",
	},
	"de": {
		"hallo", "guten", "morgen", "tag", "abend", "danke", "bitte", "ja",
		"nein", "ich", "sie", "wir", "der", "die", "das", "ein", "eine",
		"ist", "und", "möchte", "gerne", "bestellen", "lieferung", "rollen",
		"kasse", "preis",
	},
	"es": {
		"hola", "buenos", "días", "buenas", "tardes", "gracias", "por",
		"favor", "sí", "yo", "usted", "el", "los", "las", "una", "es", "y",
		"quiero", "quisiera", "pedir", "entrega", "rollos", "caja", "precio",
	},
	"it": {
		"ciao", "buongiorno", "buonasera", "grazie", "prego", "sì", "io",
		"lei", "noi", "il", "gli", "uno", "è", "e", "vorrei", "voglio",
		"ordinare", "consegna", "rotoli", "cassa", "prezzo",
	},
}

var placeNames = map[model.LanguageCode][]string{
	"en": {"london", "manchester", "birmingham", "dublin", "leeds"},
	"fr": {"paris", "lyon", "marseille", "bruxelles", "liège", "namur", "charleroi"},
	"nl": {"amsterdam", "rotterdam", "utrecht", "antwerpen", "gent", "brussel", "leuven"},
	"de": {"berlin", "münchen", "hamburg", "köln", "frankfurt", "wien"},
	"es": {"madrid", "barcelona", "sevilla", "valencia", "bilbao"},
	"it": {"roma", "milano", "napoli", "torino", "firenze"},
}
