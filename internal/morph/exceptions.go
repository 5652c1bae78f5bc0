package morph

// exceptions maps irregular inflections to their base form.
var exceptions = map[Category]map[string]string{
	Noun: {
		"children": "child",
		"data":     "data",
		"feet":     "foot",
		"geese":    "goose",
		"indices":  "index",
		"matrices": "matrix",
		"media":    "media",
		"men":      "man",
		"mice":     "mouse",
		"news":     "news",
		"people":   "person",
		"series":   "series",
		"species":  "species",
		"teeth":    "tooth",
		"women":    "woman",
	},
	Verb: {
		"am":         "be",
		"are":        "be",
		"ate":        "eat",
		"became":     "become",
		"been":       "be",
		"began":      "begin",
		"begun":      "begin",
		"bought":     "buy",
		"broke":      "break",
		"broken":     "break",
		"brought":    "bring",
		"built":      "build",
		"came":       "come",
		"caught":     "catch",
		"chose":      "choose",
		"chosen":     "choose",
		"did":        "do",
		"does":       "do",
		"done":       "do",
		"drawn":      "draw",
		"drew":       "draw",
		"driven":     "drive",
		"drove":      "drive",
		"eaten":      "eat",
		"fell":       "fall",
		"felt":       "feel",
		"flew":       "fly",
		"flown":      "fly",
		"fought":     "fight",
		"found":      "find",
		"gave":       "give",
		"given":      "give",
		"gone":       "go",
		"got":        "get",
		"gotten":     "get",
		"grew":       "grow",
		"grown":      "grow",
		"had":        "have",
		"has":        "have",
		"heard":      "hear",
		"held":       "hold",
		"is":         "be",
		"kept":       "keep",
		"knew":       "know",
		"known":      "know",
		"led":        "lead",
		"left":       "leave",
		"lost":       "lose",
		"made":       "make",
		"meant":      "mean",
		"met":        "meet",
		"paid":       "pay",
		"ran":        "run",
		"said":       "say",
		"sat":        "sit",
		"saw":        "see",
		"seen":       "see",
		"sent":       "send",
		"sold":       "sell",
		"sought":     "seek",
		"spent":      "spend",
		"spoke":      "speak",
		"spoken":     "speak",
		"stood":      "stand",
		"taken":      "take",
		"taught":     "teach",
		"thought":    "think",
		"threw":      "throw",
		"thrown":     "throw",
		"told":       "tell",
		"took":       "take",
		"understood": "understand",
		"was":        "be",
		"went":       "go",
		"were":       "be",
		"won":        "win",
		"wore":       "wear",
		"worn":       "wear",
		"written":    "write",
		"wrote":      "write",
	},
	Adjective: {
		"best":     "good",
		"better":   "good",
		"further":  "far",
		"furthest": "far",
		"least":    "little",
		"less":     "little",
		"worse":    "bad",
		"worst":    "bad",
	},
	Adverb: {
		"best":    "well",
		"better":  "well",
		"further": "far",
	},
}
