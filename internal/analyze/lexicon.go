package analyze

// stopWords are filtered out before any content-word computation.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "to": true, "of": true,
	"in": true, "for": true, "on": true, "with": true, "at": true,
	"by": true, "from": true, "as": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true,
	"below": true, "between": true, "under": true, "again": true,
	"further": true, "then": true, "once": true, "here": true,
	"there": true, "when": true, "where": true, "why": true, "how": true,
	"all": true, "each": true, "every": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "no": true,
	"nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "just": true,
	"also": true, "about": true, "and": true, "but": true, "if": true,
	"or": true, "because": true, "until": true, "while": true,
	"this": true, "that": true, "these": true, "those": true,
	"what": true, "which": true, "who": true, "whom": true, "i": true,
	"you": true, "he": true, "she": true, "it": true, "its": true,
	"we": true, "they": true, "their": true, "our": true, "your": true,
	"me": true, "my": true, "him": true, "her": true, "his": true,
}

// highSignalWords mark specific, analytical prose. Hits raise the
// signal score.
var highSignalWords = map[string]bool{
	"analysis": true, "approach": true, "benchmark": true, "causes": true,
	"compared": true, "consequently": true, "data": true, "evidence": true,
	"findings": true, "framework": true, "furthermore": true,
	"hypothesis": true, "implementation": true, "measured": true,
	"mechanism": true, "methodology": true, "moreover": true,
	"observed": true, "percent": true, "precisely": true, "published": true,
	"quantified": true, "researchers": true, "resulted": true,
	"specifically": true, "statistically": true, "study": true,
	"therefore": true, "versus": true, "whereas": true,
}

// fillerWords mark hype and low-information prose. Hits lower the
// signal score.
var fillerWords = map[string]bool{
	"absolutely": true, "actually": true, "amazing": true, "awesome": true,
	"basically": true, "bombshell": true, "crazy": true, "epic": true,
	"genuinely": true, "honestly": true, "huge": true, "incredible": true,
	"insane": true, "literally": true, "massive": true, "mindblowing": true,
	"obviously": true, "really": true, "shocking": true, "slams": true,
	"stunning": true, "totally": true, "unbelievable": true, "viral": true,
	"wild": true, "wow": true,
}

// positiveWords and negativeWords back the default sentiment scorer.
var positiveWords = map[string]bool{
	"advance": true, "benefit": true, "boost": true, "breakthrough": true,
	"celebrate": true, "gain": true, "good": true, "great": true,
	"growth": true, "hope": true, "improve": true, "improved": true,
	"positive": true, "progress": true, "promising": true, "recover": true,
	"success": true, "successful": true, "support": true, "thrive": true,
	"win": true, "wins": true,
}

var negativeWords = map[string]bool{
	"attack": true, "bad": true, "collapse": true, "crash": true,
	"crisis": true, "damage": true, "danger": true, "dead": true,
	"decline": true, "disaster": true, "fail": true, "failed": true,
	"failure": true, "fear": true, "fraud": true, "kill": true,
	"loss": true, "negative": true, "risk": true, "threat": true,
	"violence": true, "worst": true,
}
