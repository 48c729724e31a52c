package classify

import (
	"regexp"
	"strings"

	"HistoryScanner/internal/domain"
)

// categoryRule is the fixed per-category configuration: keyword list,
// priority weight, and phrase-level context patterns. Context matches
// count 1.5x a keyword match. Loaded once, never mutated at runtime.
type categoryRule struct {
	category domain.Category
	keywords []string
	weight   float64
	context  []*regexp.Regexp
}

// Keyword hits score weight each; context-pattern hits score 1.5x weight.
const contextBonus = 1.5

// Soft demotion applied to the Indian History score when the dedicated
// detector disagrees: the category can still win on weight advantage,
// matching long-standing behavior.
const indianDemotion = 0.3

var categoryRules = []categoryRule{
	{
		category: domain.CategoryPolitics,
		keywords: []string{
			"president", "government", "election", "vote", "democracy",
			"parliament", "congress", "political", "minister", "law",
			"treaty", "constitution", "legislation", "court", "supreme court",
			"prime minister", "chancellor", "diplomat", "ambassador", "senate",
			"governor", "monarchy", "emperor", "king", "queen", "ruler",
		},
		weight: 1.2,
		context: compileAllInsensitive(
			`elected (as|to the position of) [A-Z]`,
			`signed (a|the) treaty`,
			`passed (a|the) (law|bill|act)`,
			`became (the )?(president|prime minister|king|queen|emperor)`,
		),
	},
	{
		category: domain.CategoryConflict,
		keywords: []string{
			"war", "battle", "conflict", "military", "army", "soldier",
			"invasion", "troops", "combat", "weapon", "attack", "defense",
			"peace treaty", "ceasefire", "surrender", "rebellion", "revolution",
			"uprising", "siege", "guerrilla", "civil war", "world war",
		},
		weight: 1.0,
		context: compileAllInsensitive(
			`(fought|won|lost) (a|the) battle`,
			`(began|ended|during) (the )?war`,
			`military (campaign|operation|offensive)`,
			`(attacked|invaded|occupied)`,
		),
	},
	{
		category: domain.CategoryScience,
		keywords: []string{
			"science", "technology", "invention", "discovery", "research",
			"scientist", "engineer", "innovation", "computer", "internet",
			"digital", "software", "space", "rocket", "satellite", "patent",
			"laboratory", "experiment", "theory", "physics", "chemistry", "biology",
			"medicine", "astronomy", "mathematics", "algorithm", "machine",
		},
		weight: 1.1,
		context: compileAllInsensitive(
			`(invented|discovered|developed|created) (a|the|an) (new )?`,
			`scientific (breakthrough|discovery|achievement)`,
			`(launched|sent) into (space|orbit)`,
			`(published|proposed) (a|the|their) theory`,
		),
	},
	{
		category: domain.CategoryArts,
		keywords: []string{
			"art", "music", "literature", "painting", "sculpture", "novel",
			"poetry", "theater", "cinema", "movie", "actor",
			"director", "musician", "artist", "writer", "author",
			"play", "concert", "exhibition", "museum", "gallery",
			"dance", "symphony", "orchestra", "architecture", "festival",
			"cultural", "heritage", "tradition", "folklore", "crafts",
			"renaissance", "fashion",
		},
		weight: 0.9,
		context: compileAllInsensitive(
			`(wrote|published|released) (a|the|their) (book|novel|poem|song|album)`,
			`(premiered|debuted|opened) (at|in) (the )?`,
			`(painted|sculpted|composed|directed|produced)`,
			`(won|awarded|received) (a|the|an) (award|prize|medal)`,
		),
	},
	{
		category: domain.CategorySports,
		keywords: []string{
			"sport", "game", "athlete", "championship", "tournament", "olympics",
			"medal", "record", "team", "player", "coach", "stadium", "match",
			"competition", "race", "win", "score", "football", "soccer", "cricket",
			"tennis", "golf", "basketball", "baseball", "hockey", "swimming",
		},
		weight: 0.8,
		context: compileAllInsensitive(
			`(won|lost) (the|a) (match|game|championship|tournament)`,
			`(set|broke) (a|the) (world )?record`,
			`(competed|participated) in (the )?`,
			`(gold|silver|bronze) medal`,
		),
	},
	{
		category: domain.CategoryMedicine,
		keywords: []string{
			"medicine", "health", "disease", "cure", "treatment", "hospital",
			"doctor", "nurse", "patient", "surgery", "vaccine", "epidemic",
			"pandemic", "medical", "physician", "therapy", "diagnosis", "virus",
			"bacteria", "infection", "outbreak", "pharmaceutical", "drug", "clinical",
		},
		weight: 1.0,
		context: compileAllInsensitive(
			`(discovered|developed|created) (a|the|an) (cure|treatment|vaccine)`,
			`(outbreak|epidemic|pandemic) of`,
			`medical (breakthrough|discovery|procedure)`,
			`(diagnosed|treated|cured)`,
		),
	},
	{
		category: domain.CategoryIndian,
		keywords: []string{
			"india", "indian", "gandhi", "nehru", "delhi", "mumbai", "kolkata",
			"independence", "republic of india", "maharaja", "british raj", "mughal",
			"ashoka", "taj mahal", "himalaya", "ganga", "ganges", "bengal",
			"punjab", "gujarat", "rajasthan", "maratha", "sikh", "hindu", "muslim",
			"jain", "vedic", "sanskrit", "urdu", "hindi", "tamil",
			"jawaharlal nehru", "sardar vallabhbhai patel", "subhas chandra bose",
			"bhagat singh", "ambedkar", "lal bahadur shastri", "bal gangadhar tilak",
			"lala lajpat rai", "sarojini naidu", "rajendra prasad", "rani lakshmibai",
			"mangal pandey", "dadabhai naoroji",
		},
		weight: 1.3,
		context: compileAllInsensitive(
			`in India`,
			`Indian (government|parliament|leader|movement)`,
			`(Mughal|Maratha|Gupta|Maurya|Chola|Vijayanagara) (Empire|Kingdom|Dynasty)`,
			`(freedom|independence) (movement|struggle) (of|in) India`,
		),
	},
	{
		category: domain.CategoryDisasters,
		keywords: []string{
			"disaster", "accident", "earthquake", "flood", "hurricane", "tornado",
			"tsunami", "volcanic eruption", "explosion", "fire", "crash", "sinking",
			"collapse", "catastrophe", "tragedy", "emergency", "rescue", "survivor",
		},
		weight: 1.0,
		context: compileAllInsensitive(
			`(killed|claimed) [0-9]+ (lives|people)`,
			`(struck|hit|devastated) (causing|resulting in)`,
			`(worst|deadliest|most destructive) (disaster|accident|catastrophe)`,
			`(rescue|emergency|relief) (operation|effort|response)`,
		),
	},
}

// Categorize assigns the best-scoring category for the text. Total
// function: texts with no signal land in Other Historical Events. Ties
// resolve to the earlier rule in declaration order.
func Categorize(text string) domain.Category {
	if text == "" {
		return domain.CategoryOther
	}

	lower := strings.ToLower(text)

	best := domain.CategoryOther
	bestScore := 0.0
	for _, rule := range categoryRules {
		score := ruleScore(rule, text, lower)
		if rule.category == domain.CategoryIndian && score > 0 && !IsIndianEvent(text) {
			score *= indianDemotion
		}
		if score > bestScore {
			bestScore = score
			best = rule.category
		}
	}

	return best
}

func ruleScore(rule categoryRule, text, lowerText string) float64 {
	keywordHits := countKeywords(lowerText, rule.keywords)
	contextHits := countPatterns(text, rule.context)
	return float64(keywordHits)*rule.weight + contextBonus*rule.weight*float64(contextHits)
}
