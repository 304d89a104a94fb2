package language

// profiles is the built-in language table. Exactly one entry per logical
// language; spelling variants and ISO codes resolve here via the alias map.
var profiles = []Profile{
	// Germanic
	{Name: "english", Code: "en", NativeName: "English", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasArticles: true},
	{Name: "german", Code: "de", NativeName: "Deutsch", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true, HasCases: true},
	{Name: "dutch", Code: "nl", NativeName: "Nederlands", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true},
	{Name: "swedish", Code: "sv", NativeName: "Svenska", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true},
	{Name: "norwegian", Code: "no", NativeName: "Norsk", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true},
	{Name: "danish", Code: "da", NativeName: "Dansk", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true},
	{Name: "icelandic", Code: "is", NativeName: "Íslenska", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true, HasCases: true},
	{Name: "afrikaans", Code: "af", NativeName: "Afrikaans", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasArticles: true},

	// Romance
	{Name: "spanish", Code: "es", NativeName: "Español", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, ProDrop: true},
	{Name: "french", Code: "fr", NativeName: "Français", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true},
	{Name: "portuguese", Code: "pt", NativeName: "Português", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, ProDrop: true},
	{Name: "italian", Code: "it", NativeName: "Italiano", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, ProDrop: true},
	{Name: "romanian", Code: "ro", NativeName: "Română", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, HasCases: true, ProDrop: true},
	{Name: "catalan", Code: "ca", NativeName: "Català", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, ProDrop: true},
	{Name: "galician", Code: "gl", NativeName: "Galego", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, ProDrop: true},

	// Slavic
	{Name: "russian", Code: "ru", NativeName: "Русский", Script: "Cyrillic", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "ukrainian", Code: "uk", NativeName: "Українська", Script: "Cyrillic", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "polish", Code: "pl", NativeName: "Polski", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "czech", Code: "cs", NativeName: "Čeština", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "slovak", Code: "sk", NativeName: "Slovenčina", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "bulgarian", Code: "bg", NativeName: "Български", Script: "Cyrillic", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true, ProDrop: true},
	{Name: "serbian", Code: "sr", NativeName: "Српски", Script: "Cyrillic", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "croatian", Code: "hr", NativeName: "Hrvatski", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "slovenian", Code: "sl", NativeName: "Slovenščina", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "belarusian", Code: "be", NativeName: "Беларуская", Script: "Cyrillic", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "macedonian", Code: "mk", NativeName: "Македонски", Script: "Cyrillic", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true},

	// Indo-Aryan
	{Name: "hindi", Code: "hi", NativeName: "हिन्दी", Script: "Devanagari", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "bengali", Code: "bn", NativeName: "বাংলা", Script: "Bengali", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "punjabi", Code: "pa", NativeName: "ਪੰਜਾਬੀ", Script: "Gurmukhi", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "gujarati", Code: "gu", NativeName: "ગુજરાતી", Script: "Gujarati", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "marathi", Code: "mr", NativeName: "मराठी", Script: "Devanagari", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "odia", Code: "or", NativeName: "ଓଡ଼ିଆ", Script: "Oriya", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "assamese", Code: "as", NativeName: "অসমীয়া", Script: "Bengali", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "nepali", Code: "ne", NativeName: "नेपाली", Script: "Devanagari", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "sinhala", Code: "si", NativeName: "සිංහල", Script: "Sinhala", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "sanskrit", Code: "sa", NativeName: "संस्कृतम्", Script: "Devanagari", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true},
	{Name: "urdu", Code: "ur", NativeName: "اردو", Script: "Arabic", RTL: true, Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},

	// Dravidian
	{Name: "telugu", Code: "te", NativeName: "తెలుగు", Script: "Telugu", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "tamil", Code: "ta", NativeName: "தமிழ்", Script: "Tamil", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "kannada", Code: "kn", NativeName: "ಕನ್ನಡ", Script: "Kannada", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "malayalam", Code: "ml", NativeName: "മലയാളം", Script: "Malayalam", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},

	// Semitic and Iranian
	{Name: "arabic", Code: "ar", NativeName: "العربية", Script: "Arabic", RTL: true, Order: VSO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, ProDrop: true, HasCases: true},
	{Name: "hebrew", Code: "he", NativeName: "עברית", Script: "Hebrew", RTL: true, Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, ProDrop: true},
	{Name: "persian", Code: "fa", NativeName: "فارسی", Script: "Arabic", RTL: true, Order: SOV, AdjectivePos: AdjectiveAfter, Postpositions: false, ProDrop: true, Honorifics: true},
	{Name: "pashto", Code: "ps", NativeName: "پښتو", Script: "Arabic", RTL: true, Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, HasCases: true},
	{Name: "amharic", Code: "am", NativeName: "አማርኛ", Script: "Ethiopic", Order: SOV, AdjectivePos: AdjectiveBefore, HasGender: true, Postpositions: true, ProDrop: true},

	// East and Southeast Asian
	{Name: "chinese", Code: "zh", NativeName: "中文", Script: "Han", Order: SVO, AdjectivePos: AdjectiveBefore},
	{Name: "japanese", Code: "ja", NativeName: "日本語", Script: "Japanese", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, ProDrop: true, Honorifics: true},
	{Name: "korean", Code: "ko", NativeName: "한국어", Script: "Hangul", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, ProDrop: true, HasCases: true, Honorifics: true},
	{Name: "thai", Code: "th", NativeName: "ไทย", Script: "Thai", Order: SVO, AdjectivePos: AdjectiveAfter, ProDrop: true, Honorifics: true},
	{Name: "vietnamese", Code: "vi", NativeName: "Tiếng Việt", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, Honorifics: true},
	{Name: "indonesian", Code: "id", NativeName: "Bahasa Indonesia", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasArticles: false},
	{Name: "malay", Code: "ms", NativeName: "Bahasa Melayu", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter},
	{Name: "tagalog", Code: "tl", NativeName: "Tagalog", Script: "Latin", Order: VSO, AdjectivePos: AdjectiveBefore, HasArticles: true},
	{Name: "burmese", Code: "my", NativeName: "မြန်မာ", Script: "Myanmar", Order: SOV, AdjectivePos: AdjectiveAfter, Postpositions: true, ProDrop: true, Honorifics: true},
	{Name: "khmer", Code: "km", NativeName: "ខ្មែរ", Script: "Khmer", Order: SVO, AdjectivePos: AdjectiveAfter, Honorifics: true},
	{Name: "lao", Code: "lo", NativeName: "ລາວ", Script: "Lao", Order: SVO, AdjectivePos: AdjectiveAfter, Honorifics: true},

	// Other European
	{Name: "greek", Code: "el", NativeName: "Ελληνικά", Script: "Greek", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasArticles: true, HasCases: true, ProDrop: true},
	{Name: "hungarian", Code: "hu", NativeName: "Magyar", Script: "Latin", Order: SOV, AdjectivePos: AdjectiveBefore, HasArticles: true, Postpositions: true, HasCases: true, ProDrop: true},
	{Name: "finnish", Code: "fi", NativeName: "Suomi", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, Postpositions: true, HasCases: true, ProDrop: true},
	{Name: "estonian", Code: "et", NativeName: "Eesti", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, Postpositions: true, HasCases: true},
	{Name: "latvian", Code: "lv", NativeName: "Latviešu", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true},
	{Name: "lithuanian", Code: "lt", NativeName: "Lietuvių", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveBefore, HasGender: true, HasCases: true, ProDrop: true},
	{Name: "turkish", Code: "tr", NativeName: "Türkçe", Script: "Latin", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, HasCases: true, ProDrop: true, Honorifics: true},
	{Name: "azerbaijani", Code: "az", NativeName: "Azərbaycan", Script: "Latin", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, HasCases: true, ProDrop: true},
	{Name: "kazakh", Code: "kk", NativeName: "Қазақ", Script: "Cyrillic", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, HasCases: true, ProDrop: true},
	{Name: "uzbek", Code: "uz", NativeName: "Oʻzbek", Script: "Latin", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, HasCases: true, ProDrop: true},
	{Name: "georgian", Code: "ka", NativeName: "ქართული", Script: "Georgian", Order: SOV, AdjectivePos: AdjectiveBefore, Postpositions: true, HasCases: true, ProDrop: true},
	{Name: "armenian", Code: "hy", NativeName: "Հայերեն", Script: "Armenian", Order: SOV, AdjectivePos: AdjectiveBefore, HasArticles: true, Postpositions: true, HasCases: true, ProDrop: true},
	{Name: "albanian", Code: "sq", NativeName: "Shqip", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, HasCases: true},
	{Name: "basque", Code: "eu", NativeName: "Euskara", Script: "Latin", Order: SOV, AdjectivePos: AdjectiveAfter, Postpositions: true, HasCases: true, ProDrop: true},
	{Name: "welsh", Code: "cy", NativeName: "Cymraeg", Script: "Latin", Order: VSO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true},
	{Name: "irish", Code: "ga", NativeName: "Gaeilge", Script: "Latin", Order: VSO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, HasCases: true},
	{Name: "maltese", Code: "mt", NativeName: "Malti", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true},

	// African
	{Name: "swahili", Code: "sw", NativeName: "Kiswahili", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, ProDrop: true},
	{Name: "yoruba", Code: "yo", NativeName: "Yorùbá", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter},
	{Name: "igbo", Code: "ig", NativeName: "Igbo", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter},
	{Name: "hausa", Code: "ha", NativeName: "Hausa", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter, HasGender: true},
	{Name: "zulu", Code: "zu", NativeName: "isiZulu", Script: "Latin", Order: SVO, AdjectivePos: AdjectiveAfter},
	{Name: "somali", Code: "so", NativeName: "Soomaali", Script: "Latin", Order: SOV, AdjectivePos: AdjectiveAfter, HasGender: true, HasArticles: true, HasCases: true},
}

// aliases maps alternative spellings and exonyms to canonical names.
// ISO codes are resolved separately via the code index.
var aliases = map[string]string{
	"bangla":       "bengali",
	"mandarin":     "chinese",
	"cantonese":    "chinese",
	"castilian":    "spanish",
	"farsi":        "persian",
	"filipino":     "tagalog",
	"pilipino":     "tagalog",
	"oriya":        "odia",
	"panjabi":      "punjabi",
	"myanmar":      "burmese",
	"cambodian":    "khmer",
	"laotian":      "lao",
	"flemish":      "dutch",
	"bokmal":       "norwegian",
	"nynorsk":      "norwegian",
	"sinhalese":    "sinhala",
	"gaelic":       "irish",
	"kiswahili":    "swahili",
	"brazilian":    "portuguese",
	"valencian":    "catalan",
	"moldovan":     "romanian",
	"bahasa":       "indonesian",
	"slovene":      "slovenian",
	"kyrgyz":       "kazakh",
	"hindustani":   "hindi",
	"simplified chinese":  "chinese",
	"traditional chinese": "chinese",
}
