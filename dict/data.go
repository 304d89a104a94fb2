package dict

// builtinWords maps English lemmas to per-language renderings. Coverage is
// deliberately uneven between languages; sparse rows are normal.
var builtinWords = map[string]map[string]string{
	// pronouns
	"i":    {"spanish": "yo", "french": "je", "german": "ich", "hindi": "मैं", "telugu": "నేను", "bengali": "আমি", "portuguese": "eu", "italian": "io"},
	"you":  {"spanish": "tú", "french": "tu", "german": "du", "hindi": "आप", "telugu": "మీరు", "bengali": "তুমি", "portuguese": "você", "italian": "tu"},
	"he":   {"spanish": "él", "french": "il", "german": "er", "hindi": "वह", "telugu": "అతను", "bengali": "সে"},
	"she":  {"spanish": "ella", "french": "elle", "german": "sie", "hindi": "वह", "telugu": "ఆమె", "bengali": "সে"},
	"we":   {"spanish": "nosotros", "french": "nous", "german": "wir", "hindi": "हम", "telugu": "మేము", "bengali": "আমরা"},
	"they": {"spanish": "ellos", "french": "ils", "german": "sie", "hindi": "वे", "telugu": "వారు", "bengali": "তারা"},

	// common verbs (infinitive glosses)
	"be":    {"spanish": "ser", "french": "être", "german": "sein", "hindi": "होना", "telugu": "ఉండు", "bengali": "হওয়া"},
	"have":  {"spanish": "tener", "french": "avoir", "german": "haben", "hindi": "रखना", "bengali": "থাকা"},
	"go":    {"spanish": "ir", "french": "aller", "german": "gehen", "hindi": "जाना", "telugu": "వెళ్ళు", "bengali": "যাওয়া"},
	"come":  {"spanish": "venir", "french": "venir", "german": "kommen", "hindi": "आना", "telugu": "రా", "bengali": "আসা"},
	"eat":   {"spanish": "comer", "french": "manger", "german": "essen", "hindi": "खाना", "telugu": "తిను", "bengali": "খাওয়া"},
	"drink": {"spanish": "beber", "french": "boire", "german": "trinken", "hindi": "पीना", "telugu": "తాగు"},
	"love":  {"spanish": "amar", "french": "aimer", "german": "lieben", "hindi": "प्यार", "telugu": "ప్రేమించు", "bengali": "ভালোবাসা", "portuguese": "amar", "italian": "amare"},
	"like":  {"spanish": "gustar", "french": "aimer bien", "german": "mögen", "hindi": "पसंद"},
	"want":  {"spanish": "querer", "french": "vouloir", "german": "wollen", "hindi": "चाहना", "telugu": "కావాలి"},
	"know":  {"spanish": "saber", "french": "savoir", "german": "wissen", "hindi": "जानना", "telugu": "తెలుసు"},
	"see":   {"spanish": "ver", "french": "voir", "german": "sehen", "hindi": "देखना", "telugu": "చూడు", "bengali": "দেখা"},
	"speak": {"spanish": "hablar", "french": "parler", "german": "sprechen", "hindi": "बोलना", "telugu": "మాట్లాడు", "bengali": "বলা"},
	"make":  {"spanish": "hacer", "french": "faire", "german": "machen", "hindi": "बनाना"},
	"give":  {"spanish": "dar", "french": "donner", "german": "geben", "hindi": "देना", "telugu": "ఇవ్వు"},
	"take":  {"spanish": "tomar", "french": "prendre", "german": "nehmen", "hindi": "लेना"},
	"read":  {"spanish": "leer", "french": "lire", "german": "lesen", "hindi": "पढ़ना", "bengali": "পড়া"},
	"write": {"spanish": "escribir", "french": "écrire", "german": "schreiben", "hindi": "लिखना", "telugu": "రాయు"},
	"play":  {"spanish": "jugar", "french": "jouer", "german": "spielen", "hindi": "खेलना", "telugu": "ఆడు"},
	"work":  {"spanish": "trabajar", "french": "travailler", "german": "arbeiten", "hindi": "काम", "telugu": "పని"},
	"sleep": {"spanish": "dormir", "french": "dormir", "german": "schlafen", "hindi": "सोना", "telugu": "నిద్ర"},
	"run":   {"spanish": "correr", "french": "courir", "german": "laufen", "hindi": "दौड़ना"},
	"help":  {"spanish": "ayudar", "french": "aider", "german": "helfen", "hindi": "मदद", "telugu": "సహాయం", "bengali": "সাহায্য"},

	// nouns
	"cat":      {"spanish": "gato", "french": "chat", "german": "Katze", "hindi": "बिल्ली", "telugu": "పిల్లి", "bengali": "বিড়াল", "portuguese": "gato", "italian": "gatto"},
	"dog":      {"spanish": "perro", "french": "chien", "german": "Hund", "hindi": "कुत्ता", "telugu": "కుక్క", "bengali": "কুকুর"},
	"house":    {"spanish": "casa", "french": "maison", "german": "Haus", "hindi": "घर", "telugu": "ఇల్లు", "bengali": "বাড়ি"},
	"water":    {"spanish": "agua", "french": "eau", "german": "Wasser", "hindi": "पानी", "telugu": "నీరు", "bengali": "জল"},
	"food":     {"spanish": "comida", "french": "nourriture", "german": "Essen", "hindi": "खाना", "telugu": "ఆహారం", "bengali": "খাবার"},
	"book":     {"spanish": "libro", "french": "livre", "german": "Buch", "hindi": "किताब", "telugu": "పుస్తకం", "bengali": "বই"},
	"friend":   {"spanish": "amigo", "french": "ami", "german": "Freund", "hindi": "दोस्त", "telugu": "స్నేహితుడు", "bengali": "বন্ধু"},
	"mother":   {"spanish": "madre", "french": "mère", "german": "Mutter", "hindi": "माँ", "telugu": "అమ్మ", "bengali": "মা"},
	"father":   {"spanish": "padre", "french": "père", "german": "Vater", "hindi": "पिता", "telugu": "నాన్న", "bengali": "বাবা"},
	"child":    {"spanish": "niño", "french": "enfant", "german": "Kind", "hindi": "बच्चा", "telugu": "పిల్లవాడు"},
	"man":      {"spanish": "hombre", "french": "homme", "german": "Mann", "hindi": "आदमी", "telugu": "మనిషి"},
	"woman":    {"spanish": "mujer", "french": "femme", "german": "Frau", "hindi": "औरत", "telugu": "స్త్రీ"},
	"day":      {"spanish": "día", "french": "jour", "german": "Tag", "hindi": "दिन", "telugu": "రోజు", "bengali": "দিন"},
	"night":    {"spanish": "noche", "french": "nuit", "german": "Nacht", "hindi": "रात", "telugu": "రాత్రి", "bengali": "রাত"},
	"time":     {"spanish": "tiempo", "french": "temps", "german": "Zeit", "hindi": "समय", "telugu": "సమయం", "bengali": "সময়"},
	"name":     {"spanish": "nombre", "french": "nom", "german": "Name", "hindi": "नाम", "telugu": "పేరు", "bengali": "নাম"},
	"language": {"spanish": "idioma", "french": "langue", "german": "Sprache", "hindi": "भाषा", "telugu": "భాష", "bengali": "ভাষা"},
	"school":   {"spanish": "escuela", "french": "école", "german": "Schule", "hindi": "स्कूल", "telugu": "బడి", "bengali": "স্কুল"},
	"money":    {"spanish": "dinero", "french": "argent", "german": "Geld", "hindi": "पैसा", "telugu": "డబ్బు", "bengali": "টাকা"},
	"tea":      {"spanish": "té", "french": "thé", "german": "Tee", "hindi": "चाय", "telugu": "టీ", "bengali": "চা"},
	"milk":     {"spanish": "leche", "french": "lait", "german": "Milch", "hindi": "दूध", "telugu": "పాలు", "bengali": "দুধ"},
	"rice":     {"spanish": "arroz", "french": "riz", "german": "Reis", "hindi": "चावल", "telugu": "అన్నం", "bengali": "ভাত"},

	// adjectives
	"good":      {"spanish": "bueno", "french": "bon", "german": "gut", "hindi": "अच्छा", "telugu": "మంచి", "bengali": "ভালো"},
	"bad":       {"spanish": "malo", "french": "mauvais", "german": "schlecht", "hindi": "बुरा", "telugu": "చెడ్డ", "bengali": "খারাপ"},
	"big":       {"spanish": "grande", "french": "grand", "german": "groß", "hindi": "बड़ा", "telugu": "పెద్ద", "bengali": "বড়"},
	"small":     {"spanish": "pequeño", "french": "petit", "german": "klein", "hindi": "छोटा", "telugu": "చిన్న", "bengali": "ছোট"},
	"beautiful": {"spanish": "hermoso", "french": "beau", "german": "schön", "hindi": "सुंदर", "telugu": "అందమైన", "bengali": "সুন্দর"},
	"new":       {"spanish": "nuevo", "french": "nouveau", "german": "neu", "hindi": "नया", "telugu": "కొత్త", "bengali": "নতুন"},
	"old":       {"spanish": "viejo", "french": "vieux", "german": "alt", "hindi": "पुराना", "telugu": "పాత"},
	"happy":     {"spanish": "feliz", "french": "heureux", "german": "glücklich", "hindi": "खुश", "telugu": "సంతోషం", "bengali": "খুশি"},
	"red":       {"spanish": "rojo", "french": "rouge", "german": "rot", "hindi": "लाल", "telugu": "ఎరుపు", "bengali": "লাল"},
	"hot":       {"spanish": "caliente", "french": "chaud", "german": "heiß", "hindi": "गरम", "telugu": "వేడి", "bengali": "গরম"},
	"cold":      {"spanish": "frío", "french": "froid", "german": "kalt", "hindi": "ठंडा", "telugu": "చల్లని", "bengali": "ঠান্ডা"},

	// function words
	"yes":    {"spanish": "sí", "french": "oui", "german": "ja", "hindi": "हाँ", "telugu": "అవును", "bengali": "হ্যাঁ"},
	"no":     {"spanish": "no", "french": "non", "german": "nein", "hindi": "नहीं", "telugu": "కాదు", "bengali": "না"},
	"please": {"spanish": "por favor", "french": "s'il vous plaît", "german": "bitte", "hindi": "कृपया", "telugu": "దయచేసి"},
	"today":  {"spanish": "hoy", "french": "aujourd'hui", "german": "heute", "hindi": "आज", "telugu": "ఈరోజు", "bengali": "আজ"},
	"now":    {"spanish": "ahora", "french": "maintenant", "german": "jetzt", "hindi": "अभी", "telugu": "ఇప్పుడు", "bengali": "এখন"},
	"very":   {"spanish": "muy", "french": "très", "german": "sehr", "hindi": "बहुत", "telugu": "చాలా", "bengali": "খুব"},
	"and":    {"spanish": "y", "french": "et", "german": "und", "hindi": "और", "telugu": "మరియు", "bengali": "এবং"},
	"not":    {"spanish": "no", "french": "ne pas", "german": "nicht", "hindi": "नहीं", "telugu": "లేదు", "bengali": "না"},
}

// builtinPhrases maps whole English phrases to per-language renderings.
// Phrase hits bypass word-by-word translation entirely.
var builtinPhrases = map[string]map[string]string{
	"hello": {
		"spanish": "hola", "french": "bonjour", "german": "hallo",
		"hindi": "नमस्ते", "telugu": "నమస్కారం", "bengali": "নমস্কার",
		"portuguese": "olá", "italian": "ciao",
	},
	"good morning": {
		"spanish": "buenos días", "french": "bonjour", "german": "guten Morgen",
		"hindi": "सुप्रभात", "telugu": "శుభోదయం", "bengali": "সুপ্রভাত",
	},
	"good night": {
		"spanish": "buenas noches", "french": "bonne nuit", "german": "gute Nacht",
		"hindi": "शुभ रात्रि", "telugu": "శుభ రాత్రి", "bengali": "শুভ রাত্রি",
	},
	"how are you": {
		"spanish": "¿cómo estás?", "french": "comment allez-vous ?", "german": "wie geht es dir?",
		"hindi": "आप कैसे हैं", "telugu": "మీరు ఎలా ఉన్నారు", "bengali": "আপনি কেমন আছেন",
		"portuguese": "como vai você?", "italian": "come stai?",
	},
	"i am fine": {
		"spanish": "estoy bien", "french": "je vais bien", "german": "mir geht es gut",
		"hindi": "मैं ठीक हूँ", "telugu": "నేను బాగున్నాను", "bengali": "আমি ভালো আছি",
	},
	"thank you": {
		"spanish": "gracias", "french": "merci", "german": "danke",
		"hindi": "धन्यवाद", "telugu": "ధన్యవాదాలు", "bengali": "ধন্যবাদ",
		"portuguese": "obrigado", "italian": "grazie",
	},
	"you are welcome": {
		"spanish": "de nada", "french": "de rien", "german": "gern geschehen",
		"hindi": "आपका स्वागत है", "telugu": "పర్వాలేదు",
	},
	"good bye": {
		"spanish": "adiós", "french": "au revoir", "german": "auf Wiedersehen",
		"hindi": "अलविदा", "telugu": "వీడ్కోలు", "bengali": "বিদায়",
	},
	"what is your name": {
		"spanish": "¿cómo te llamas?", "french": "comment tu t'appelles ?", "german": "wie heißt du?",
		"hindi": "आपका नाम क्या है", "telugu": "మీ పేరు ఏమిటి", "bengali": "তোমার নাম কী",
	},
	"my name is": {
		"spanish": "me llamo", "french": "je m'appelle", "german": "ich heiße",
		"hindi": "मेरा नाम है", "telugu": "నా పేరు",
	},
	"i love you": {
		"spanish": "te quiero", "french": "je t'aime", "german": "ich liebe dich",
		"hindi": "मैं तुमसे प्यार करता हूँ", "telugu": "నేను నిన్ను ప్రేమిస్తున్నాను", "bengali": "আমি তোমাকে ভালোবাসি",
	},
	"excuse me": {
		"spanish": "disculpe", "french": "excusez-moi", "german": "entschuldigung",
		"hindi": "माफ़ कीजिए", "telugu": "క్షమించండి",
	},
	"i do not understand": {
		"spanish": "no entiendo", "french": "je ne comprends pas", "german": "ich verstehe nicht",
		"hindi": "मैं नहीं समझा", "telugu": "నాకు అర్థం కాలేదు",
	},
	"see you later": {
		"spanish": "hasta luego", "french": "à plus tard", "german": "bis später",
		"hindi": "फिर मिलेंगे", "telugu": "మళ్ళీ కలుద్దాం",
	},
	"where is the bathroom": {
		"spanish": "¿dónde está el baño?", "french": "où sont les toilettes ?", "german": "wo ist die Toilette?",
		"hindi": "बाथरूम कहाँ है", "telugu": "బాత్రూమ్ ఎక్కడ ఉంది",
	},
	"how much does it cost": {
		"spanish": "¿cuánto cuesta?", "french": "combien ça coûte ?", "german": "was kostet das?",
		"hindi": "इसकी कीमत क्या है", "telugu": "దీని ధర ఎంత",
	},
}
