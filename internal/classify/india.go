package classify

var indianDetector = detector{
	core: []string{
		"india", "indian", "gandhi", "nehru", "delhi", "mumbai", "kolkata",
		"british raj", "mughal", "maratha", "ashoka", "taj mahal", "himalaya",
		"indira gandhi", "rajiv gandhi", "sardar patel", "subhas chandra bose",
		"bhagat singh", "ambedkar", "lal bahadur shastri",
	},
	secondary: []string{
		"independence", "republic of india", "maharaja", "ganga", "ganges", "bengal",
		"punjab", "gujarat", "rajasthan", "sikh", "hindu", "muslim",
		"buddhist", "jain", "vedic", "sanskrit", "urdu", "hindi", "tamil",
	},
	context: compileAllInsensitive(
		`in India`,
		`Indian (government|parliament|leader|movement)`,
		`(Mughal|Maratha|Gupta|Maurya|Chola|Vijayanagara) (Empire|Kingdom|Dynasty)`,
		`(freedom|independence) (movement|struggle) (of|in) India`,
	),
	anti: compileAllInsensitive(
		`Indian Ocean`,
		`West Indies`,
		`East India Company`,
		`American Indian`,
		`Indianapolis`,
		`Indiana`,
	),
	minCore: 1,
}

// IsIndianEvent reports whether the text describes an event genuinely
// about Indian history rather than one that merely name-drops a
// homonymous term (Indian Ocean, Indianapolis, ...).
func IsIndianEvent(text string) bool {
	return indianDetector.match(text)
}
