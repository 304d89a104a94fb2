package idiom

// builtinIdioms is the seed table. Translations are sparse on purpose:
// a missing language falls through to word-level translation.
var builtinIdioms = []Entry{
	{
		Phrase:  "kick the bucket",
		Meaning: "to die",
		Translations: map[string]string{
			"spanish":    "estirar la pata",
			"french":     "casser sa pipe",
			"german":     "den Löffel abgeben",
			"portuguese": "bater as botas",
			"italian":    "tirare le cuoia",
			"hindi":      "चल बसना",
		},
		Category: CategoryIdiom,
		Register: RegisterInformal,
	},
	{
		Phrase:  "break the ice",
		Meaning: "to ease initial tension",
		Translations: map[string]string{
			"spanish":    "romper el hielo",
			"french":     "briser la glace",
			"german":     "das Eis brechen",
			"portuguese": "quebrar o gelo",
			"italian":    "rompere il ghiaccio",
			"hindi":      "झिझक तोड़ना",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "piece of cake",
		Meaning: "something very easy",
		Translations: map[string]string{
			"spanish":    "pan comido",
			"french":     "un jeu d'enfant",
			"german":     "ein Kinderspiel",
			"portuguese": "moleza",
			"hindi":      "बाएं हाथ का खेल",
		},
		Category: CategoryIdiom,
		Register: RegisterInformal,
	},
	{
		Phrase:  "let the cat out of the bag",
		Meaning: "to reveal a secret",
		Translations: map[string]string{
			"spanish": "descubrir el pastel",
			"french":  "vendre la mèche",
			"german":  "die Katze aus dem Sack lassen",
			"hindi":   "भेद खोल देना",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "once in a blue moon",
		Meaning: "very rarely",
		Translations: map[string]string{
			"spanish":    "de higos a brevas",
			"french":     "tous les trente-six du mois",
			"german":     "alle Jubeljahre",
			"portuguese": "uma vez na vida, outra na morte",
			"hindi":      "कभी-कभार",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "under the weather",
		Meaning: "feeling slightly ill",
		Translations: map[string]string{
			"spanish": "pachucho",
			"french":  "pas dans son assiette",
			"german":  "nicht ganz auf der Höhe",
			"hindi":   "तबीयत ढीली होना",
		},
		Category: CategoryIdiom,
		Register: RegisterInformal,
	},
	{
		Phrase:  "cost an arm and a leg",
		Meaning: "to be very expensive",
		Translations: map[string]string{
			"spanish": "costar un ojo de la cara",
			"french":  "coûter les yeux de la tête",
			"german":  "ein Vermögen kosten",
			"hindi":   "बहुत महंगा होना",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "hit the nail on the head",
		Meaning: "to be exactly right",
		Translations: map[string]string{
			"spanish": "dar en el clavo",
			"french":  "mettre dans le mille",
			"german":  "den Nagel auf den Kopf treffen",
			"hindi":   "सही निशाने पर लगना",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "spill the beans",
		Meaning: "to reveal a secret",
		Translations: map[string]string{
			"spanish": "irse de la lengua",
			"french":  "cracher le morceau",
			"german":  "alles ausplaudern",
			"hindi":   "राज़ खोल देना",
		},
		Category: CategoryIdiom,
		Register: RegisterInformal,
	},
	{
		Phrase:  "when pigs fly",
		Meaning: "never",
		Translations: map[string]string{
			"spanish": "cuando las ranas críen pelo",
			"french":  "quand les poules auront des dents",
			"german":  "wenn Schweine fliegen können",
			"hindi":   "ऐसा कभी नहीं होगा",
		},
		Category: CategoryIdiom,
		Register: RegisterInformal,
	},
	{
		Phrase:  "the ball is in your court",
		Meaning: "it is your decision now",
		Translations: map[string]string{
			"spanish": "la pelota está en tu tejado",
			"french":  "la balle est dans ton camp",
			"german":  "du bist am Zug",
			"hindi":   "अब फैसला आपके हाथ में है",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "bite the bullet",
		Meaning: "to face something unpleasant with courage",
		Translations: map[string]string{
			"spanish": "hacer de tripas corazón",
			"french":  "serrer les dents",
			"german":  "in den sauren Apfel beißen",
			"hindi":   "हिम्मत करके झेलना",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "actions speak louder than words",
		Meaning: "what you do matters more than what you say",
		Translations: map[string]string{
			"spanish":    "hechos son amores y no buenas razones",
			"french":     "les actes valent mieux que les paroles",
			"german":     "Taten sagen mehr als Worte",
			"portuguese": "ações falam mais alto que palavras",
			"hindi":      "कथनी से करनी भली",
		},
		Category: CategoryProverb,
	},
	{
		Phrase:  "the early bird catches the worm",
		Meaning: "acting early brings success",
		Translations: map[string]string{
			"spanish": "a quien madruga, dios le ayuda",
			"french":  "l'avenir appartient à ceux qui se lèvent tôt",
			"german":  "der frühe Vogel fängt den Wurm",
			"hindi":   "जो जागत है सो पावत है",
		},
		Category: CategoryProverb,
	},
	{
		Phrase:  "better late than never",
		Meaning: "doing something late beats not doing it",
		Translations: map[string]string{
			"spanish":    "más vale tarde que nunca",
			"french":     "mieux vaut tard que jamais",
			"german":     "besser spät als nie",
			"portuguese": "antes tarde do que nunca",
			"italian":    "meglio tardi che mai",
			"hindi":      "देर आए दुरुस्त आए",
		},
		Category: CategoryProverb,
	},
	{
		Phrase:  "no pain no gain",
		Meaning: "effort is required for reward",
		Translations: map[string]string{
			"spanish": "quien algo quiere, algo le cuesta",
			"french":  "on n'a rien sans rien",
			"german":  "ohne Fleiß kein Preis",
			"hindi":   "बिना मेहनत फल नहीं मिलता",
		},
		Category: CategoryProverb,
	},
	{
		Phrase:  "hang in there",
		Meaning: "keep going, do not give up",
		Translations: map[string]string{
			"spanish": "aguanta",
			"french":  "tiens bon",
			"german":  "halte durch",
			"hindi":   "हिम्मत मत हारो",
		},
		Category: CategoryColloquial,
		Register: RegisterInformal,
	},
	{
		Phrase:  "call it a day",
		Meaning: "to stop working for now",
		Translations: map[string]string{
			"spanish": "dar el día por terminado",
			"french":  "s'arrêter là pour aujourd'hui",
			"german":  "Feierabend machen",
			"hindi":   "आज के लिए बस करना",
		},
		Category: CategoryColloquial,
		Register: RegisterInformal,
	},
	{
		Phrase:  "long time no see",
		Meaning: "greeting after a long absence",
		Translations: map[string]string{
			"spanish": "cuánto tiempo sin verte",
			"french":  "ça fait un bail",
			"german":  "lange nicht gesehen",
			"hindi":   "बहुत दिनों बाद मिले",
		},
		Category: CategorySlang,
		Register: RegisterInformal,
	},
	{
		Phrase:  "out of the blue",
		Meaning: "completely unexpectedly",
		Translations: map[string]string{
			"spanish": "de buenas a primeras",
			"french":  "de but en blanc",
			"german":  "aus heiterem Himmel",
			"hindi":   "अचानक",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "add fuel to the fire",
		Meaning: "to make a bad situation worse",
		Translations: map[string]string{
			"spanish": "echar leña al fuego",
			"french":  "jeter de l'huile sur le feu",
			"german":  "Öl ins Feuer gießen",
			"hindi":   "आग में घी डालना",
		},
		Category: CategoryIdiom,
	},
	{
		Phrase:  "birds of a feather flock together",
		Meaning: "similar people keep company",
		Translations: map[string]string{
			"spanish": "dios los cría y ellos se juntan",
			"french":  "qui se ressemble s'assemble",
			"german":  "gleich und gleich gesellt sich gern",
			"hindi":   "चोर-चोर मौसेरे भाई",
		},
		Category: CategoryProverb,
	},
}
