package morph

// verbForms holds the principal parts of an irregular verb.
type verbForms struct {
	past       string
	participle string
}

// irregularVerbs maps infinitives to their irregular principal parts.
// "be" is handled specially for was/were person agreement.
var irregularVerbs = map[string]verbForms{
	"be":     {"was", "been"},
	"have":   {"had", "had"},
	"do":     {"did", "done"},
	"go":     {"went", "gone"},
	"say":    {"said", "said"},
	"make":   {"made", "made"},
	"take":   {"took", "taken"},
	"come":   {"came", "come"},
	"see":    {"saw", "seen"},
	"know":   {"knew", "known"},
	"get":    {"got", "gotten"},
	"give":   {"gave", "given"},
	"find":   {"found", "found"},
	"think":  {"thought", "thought"},
	"tell":   {"told", "told"},
	"become": {"became", "become"},
	"leave":  {"left", "left"},
	"feel":   {"felt", "felt"},
	"put":    {"put", "put"},
	"bring":  {"brought", "brought"},
	"begin":  {"began", "begun"},
	"keep":   {"kept", "kept"},
	"hold":   {"held", "held"},
	"write":  {"wrote", "written"},
	"stand":  {"stood", "stood"},
	"hear":   {"heard", "heard"},
	"let":    {"let", "let"},
	"mean":   {"meant", "meant"},
	"set":    {"set", "set"},
	"meet":   {"met", "met"},
	"run":    {"ran", "run"},
	"pay":    {"paid", "paid"},
	"sit":    {"sat", "sat"},
	"speak":  {"spoke", "spoken"},
	"lie":    {"lay", "lain"},
	"lead":   {"led", "led"},
	"read":   {"read", "read"},
	"grow":   {"grew", "grown"},
	"lose":   {"lost", "lost"},
	"fall":   {"fell", "fallen"},
	"send":   {"sent", "sent"},
	"build":  {"built", "built"},
	"understand": {"understood", "understood"},
	"draw":   {"drew", "drawn"},
	"break":  {"broke", "broken"},
	"spend":  {"spent", "spent"},
	"cut":    {"cut", "cut"},
	"rise":   {"rose", "risen"},
	"drive":  {"drove", "driven"},
	"buy":    {"bought", "bought"},
	"wear":   {"wore", "worn"},
	"choose": {"chose", "chosen"},
	"eat":    {"ate", "eaten"},
	"drink":  {"drank", "drunk"},
	"sing":   {"sang", "sung"},
	"swim":   {"swam", "swum"},
	"fly":    {"flew", "flown"},
	"forget": {"forgot", "forgotten"},
	"sleep":  {"slept", "slept"},
	"teach":  {"taught", "taught"},
	"catch":  {"caught", "caught"},
	"fight":  {"fought", "fought"},
	"throw":  {"threw", "thrown"},
	"win":    {"won", "won"},
	"sell":   {"sold", "sold"},
}

// pastIndex is the precomputed reverse map: inflected irregular form to
// infinitive. Built once at init.
var pastIndex = map[string]string{}

// irregularPlurals maps singular nouns to irregular plurals.
var irregularPlurals = map[string]string{
	"man":        "men",
	"woman":      "women",
	"child":      "children",
	"person":     "people",
	"foot":       "feet",
	"tooth":      "teeth",
	"goose":      "geese",
	"mouse":      "mice",
	"louse":      "lice",
	"ox":         "oxen",
	"sheep":      "sheep",
	"deer":       "deer",
	"fish":       "fish",
	"species":    "species",
	"series":     "series",
	"datum":      "data",
	"criterion":  "criteria",
	"phenomenon": "phenomena",
	"analysis":   "analyses",
	"basis":      "bases",
	"crisis":     "crises",
	"thesis":     "theses",
	"cactus":     "cacti",
	"focus":      "foci",
	"fungus":     "fungi",
	"life":       "lives",
	"knife":      "knives",
	"wife":       "wives",
	"leaf":       "leaves",
	"wolf":       "wolves",
	"half":       "halves",
	"self":       "selves",
}

// singularIndex is the precomputed reverse of irregularPlurals.
var singularIndex = map[string]string{}

func init() {
	for inf, f := range irregularVerbs {
		pastIndex[f.past] = inf
		pastIndex[f.participle] = inf
	}
	// "be" has a split past form.
	pastIndex["were"] = "be"
	pastIndex["was"] = "be"
	pastIndex["is"] = "be"
	pastIndex["are"] = "be"
	pastIndex["am"] = "be"
	pastIndex["has"] = "have"
	pastIndex["does"] = "do"
	pastIndex["goes"] = "go"

	for sg, pl := range irregularPlurals {
		singularIndex[pl] = sg
	}
}

// Closed word classes for POS detection.
var determiners = set("the", "a", "an", "this", "that", "these", "those",
	"my", "your", "his", "her", "its", "our", "their", "some", "any", "no",
	"every", "each", "either", "neither", "much", "many", "few", "several",
	"all", "both", "half", "such", "what", "which", "whose")

var pronouns = set("i", "you", "he", "she", "it", "we", "they", "me", "him",
	"her", "us", "them", "mine", "yours", "hers", "ours", "theirs", "myself",
	"yourself", "himself", "herself", "itself", "ourselves", "themselves",
	"who", "whom", "someone", "anyone", "everyone", "nobody", "something",
	"anything", "everything", "nothing", "this", "that")

var prepositions = set("in", "on", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before", "after",
	"above", "below", "to", "from", "up", "down", "of", "off", "over",
	"under", "near", "without", "within", "along", "across", "behind",
	"beyond", "around", "among", "upon", "toward", "towards")

var conjunctions = set("and", "but", "or", "nor", "so", "yet", "because",
	"although", "though", "while", "whereas", "unless", "since", "if",
	"when", "whenever", "where", "wherever", "until", "as", "than",
	"whether", "that")

var interjections = set("oh", "wow", "ouch", "hey", "hi", "hello", "alas",
	"hurray", "oops", "ah", "uh", "um", "yay", "bravo", "phew")

// commonVerbs is a curated open-class verb set for forms the suffix
// heuristics cannot catch.
var commonVerbs = set("be", "have", "do", "go", "say", "make", "take",
	"come", "see", "know", "get", "give", "find", "think", "tell", "become",
	"leave", "feel", "put", "bring", "begin", "keep", "hold", "write",
	"stand", "hear", "let", "mean", "set", "meet", "run", "pay", "sit",
	"speak", "lie", "lead", "read", "grow", "lose", "fall", "send", "build",
	"understand", "draw", "break", "spend", "cut", "rise", "drive", "buy",
	"wear", "choose", "eat", "drink", "sing", "swim", "fly", "forget",
	"sleep", "teach", "catch", "fight", "throw", "win", "sell", "love",
	"like", "hate", "want", "need", "use", "work", "call", "try", "ask",
	"play", "move", "live", "believe", "happen", "watch", "follow", "stop",
	"open", "close", "walk", "talk", "help", "start", "turn", "show",
	"look", "wait", "learn", "change", "kick")

var commonAdjectives = set("good", "bad", "big", "small", "large", "little",
	"old", "young", "new", "long", "short", "high", "low", "hot", "cold",
	"warm", "cool", "fast", "slow", "happy", "sad", "angry", "beautiful",
	"ugly", "rich", "poor", "strong", "weak", "hard", "soft", "easy",
	"difficult", "early", "late", "red", "blue", "green", "black", "white",
	"yellow", "dark", "bright", "clean", "dirty", "empty", "full", "heavy",
	"light", "right", "wrong", "same", "different", "important", "great",
	"nice", "fine", "sweet", "tall")

var commonAdverbs = set("very", "too", "also", "just", "now", "then",
	"here", "there", "always", "never", "often", "sometimes", "again",
	"soon", "already", "still", "yesterday", "today", "tomorrow", "well",
	"almost", "together", "away", "maybe", "perhaps", "not")

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
