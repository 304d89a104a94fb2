package sense

// builtinSenses is the seed inventory. The first sense listed for a word is
// its default.
var builtinSenses = []Sense{
	{
		Word: "bank", ID: "bank/money", Meaning: "financial institution",
		Clues: []string{"money", "account", "loan", "deposit", "cash", "credit", "savings", "atm"},
		Translations: map[string]string{
			"spanish": "banco", "french": "banque", "german": "Bank",
			"hindi": "बैंक", "portuguese": "banco", "italian": "banca",
		},
	},
	{
		Word: "bank", ID: "bank/river", Meaning: "edge of a river",
		Clues: []string{"river", "water", "shore", "fishing", "stream", "mud", "boat"},
		Translations: map[string]string{
			"spanish": "orilla", "french": "rive", "german": "Ufer",
			"hindi": "किनारा", "portuguese": "margem", "italian": "riva",
		},
	},
	{
		Word: "bat", ID: "bat/sports", Meaning: "club used to hit a ball",
		Clues: []string{"ball", "cricket", "baseball", "hit", "game", "player", "swing"},
		Translations: map[string]string{
			"spanish": "bate", "french": "batte", "german": "Schläger", "hindi": "बल्ला",
		},
	},
	{
		Word: "bat", ID: "bat/animal", Meaning: "flying mammal",
		Clues: []string{"fly", "night", "cave", "wings", "animal", "dark", "hanging"},
		Translations: map[string]string{
			"spanish": "murciélago", "french": "chauve-souris", "german": "Fledermaus", "hindi": "चमगादड़",
		},
	},
	{
		Word: "spring", ID: "spring/season", Meaning: "season after winter",
		Clues: []string{"season", "flowers", "winter", "summer", "bloom", "march", "april"},
		Translations: map[string]string{
			"spanish": "primavera", "french": "printemps", "german": "Frühling", "hindi": "वसंत",
		},
	},
	{
		Word: "spring", ID: "spring/coil", Meaning: "elastic coil",
		Clues: []string{"metal", "coil", "mattress", "bounce", "mechanism", "steel"},
		Translations: map[string]string{
			"spanish": "resorte", "french": "ressort", "german": "Feder", "hindi": "कमानी",
		},
	},
	{
		Word: "spring", ID: "spring/water", Meaning: "natural water source",
		Clues: []string{"water", "hot", "mineral", "mountain", "source", "fresh"},
		Translations: map[string]string{
			"spanish": "manantial", "french": "source", "german": "Quelle", "hindi": "झरना",
		},
	},
	{
		Word: "light", ID: "light/illumination", Meaning: "visible illumination",
		Clues: []string{"lamp", "sun", "bright", "dark", "switch", "bulb", "shine"},
		Translations: map[string]string{
			"spanish": "luz", "french": "lumière", "german": "Licht", "hindi": "रोशनी",
		},
	},
	{
		Word: "light", ID: "light/weight", Meaning: "not heavy",
		Clues: []string{"heavy", "weight", "carry", "bag", "feather", "lift"},
		Translations: map[string]string{
			"spanish": "ligero", "french": "léger", "german": "leicht", "hindi": "हल्का",
		},
	},
	{
		Word: "watch", ID: "watch/observe", Meaning: "to look at attentively",
		Clues: []string{"movie", "television", "tv", "game", "look", "see", "show"},
		Translations: map[string]string{
			"spanish": "mirar", "french": "regarder", "german": "ansehen", "hindi": "देखना",
		},
	},
	{
		Word: "watch", ID: "watch/timepiece", Meaning: "wrist timepiece",
		Clues: []string{"wrist", "time", "clock", "wear", "strap", "hour"},
		Translations: map[string]string{
			"spanish": "reloj", "french": "montre", "german": "Uhr", "hindi": "घड़ी",
		},
	},
	{
		Word: "book", ID: "book/object", Meaning: "bound pages to read",
		Clues: []string{"read", "pages", "library", "author", "story", "novel"},
		Translations: map[string]string{
			"spanish": "libro", "french": "livre", "german": "Buch", "hindi": "किताब",
		},
	},
	{
		Word: "book", ID: "book/reserve", Meaning: "to reserve",
		Clues: []string{"ticket", "hotel", "flight", "reserve", "room", "seat", "table"},
		Translations: map[string]string{
			"spanish": "reservar", "french": "réserver", "german": "buchen", "hindi": "बुक करना",
		},
	},
	{
		Word: "match", ID: "match/game", Meaning: "sporting contest",
		Clues: []string{"cricket", "football", "game", "play", "win", "team", "score"},
		Translations: map[string]string{
			"spanish": "partido", "french": "match", "german": "Spiel", "hindi": "मैच",
		},
	},
	{
		Word: "match", ID: "match/fire", Meaning: "fire-starting stick",
		Clues: []string{"fire", "light", "candle", "strike", "burn", "box"},
		Translations: map[string]string{
			"spanish": "cerilla", "french": "allumette", "german": "Streichholz", "hindi": "माचिस",
		},
	},
	{
		Word: "right", ID: "right/correct", Meaning: "correct",
		Clues: []string{"answer", "correct", "wrong", "true", "exactly"},
		Translations: map[string]string{
			"spanish": "correcto", "french": "juste", "german": "richtig", "hindi": "सही",
		},
	},
	{
		Word: "right", ID: "right/direction", Meaning: "opposite of left",
		Clues: []string{"left", "turn", "side", "hand", "direction", "street"},
		Translations: map[string]string{
			"spanish": "derecha", "french": "droite", "german": "rechts", "hindi": "दाहिना",
		},
	},
}
