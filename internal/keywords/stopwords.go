package keywords

// stopWords is the fixed bilingual (Russian + English) stop-word set:
// articles, prepositions, conjunctions, pronouns and auxiliary verbs that
// carry no signal for keyword matching. Tokens shorter than three runes are
// dropped by the length filter before this set is consulted.
var stopWords = map[string]bool{
	// Russian
	"или": true, "для": true, "при": true, "про": true, "над": true,
	"под": true, "без": true, "как": true, "что": true, "это": true,
	"эта": true, "эти": true, "тот": true, "этот": true, "все": true,
	"всё": true, "так": true, "там": true, "тут": true, "здесь": true,
	"его": true, "её": true, "еще": true, "ещё": true, "уже": true,
	"был": true, "была": true, "было": true, "были": true, "быть": true,
	"есть": true, "будет": true, "может": true, "можно": true, "нужно": true,
	"надо": true, "если": true, "чтобы": true, "когда": true, "тогда": true,
	"где": true, "куда": true, "почему": true, "потому": true, "затем": true,
	"только": true, "очень": true, "также": true, "тоже": true, "даже": true,
	"ведь": true, "вот": true, "него": true, "неё": true, "них": true,
	"нас": true, "вас": true, "они": true, "оно": true, "она": true,
	"мне": true, "меня": true, "тебя": true, "себя": true, "свой": true,
	"своя": true, "свои": true, "наш": true, "ваш": true, "после": true,
	"перед": true, "через": true, "между": true, "чем": true, "нет": true,
	// English
	"the": true, "and": true, "for": true, "are": true, "was": true,
	"were": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"this": true, "that": true, "these": true, "those": true, "its": true,
	"from": true, "with": true, "into": true, "onto": true, "over": true,
	"under": true, "about": true, "after": true, "before": true, "between": true,
	"through": true, "during": true, "not": true, "but": true, "all": true,
	"each": true, "both": true, "more": true, "most": true, "other": true,
	"some": true, "such": true, "only": true, "own": true, "same": true,
	"very": true, "can": true, "just": true, "than": true, "then": true,
	"when": true, "where": true, "which": true, "while": true, "who": true,
	"whom": true, "why": true, "how": true, "what": true, "out": true,
	"off": true, "again": true, "once": true, "here": true, "there": true,
	"any": true, "nor": true, "too": true, "you": true, "your": true,
	"our": true, "his": true, "her": true, "they": true, "them": true,
	"their": true,
}
