package classify

var artsDetector = detector{
	core: []string{
		"art", "music", "literature", "painting", "sculpture", "novel",
		"poetry", "theater", "cinema", "film", "movie", "actor", "actress",
		"director", "composer", "musician", "artist", "writer", "author",
		"play", "concert", "exhibition", "museum", "gallery", "performance",
		"dance", "ballet", "opera", "symphony", "orchestra", "band",
	},
	secondary: []string{
		"cultural", "artistic", "creative", "premiere", "debut", "masterpiece",
		"composition", "publication", "release", "award", "festival", "ceremony",
		"heritage", "tradition", "folklore", "crafts", "design", "fashion",
	},
	context: compileAllInsensitive(
		`(wrote|published|released) (a|the|their) (book|novel|poem|song|album)`,
		`(premiered|debuted|opened) (at|in) (the )?`,
		`(painted|sculpted|composed|directed|produced)`,
		`(won|awarded|received) (a|the|an) (award|prize|medal)`,
		`(performed|sang|played|exhibited) (at|in|on) (the )?`,
		`(festival|exhibition|show|performance|concert) (of|at|in) (the )?`,
	),
	anti: compileAllInsensitive(
		`political art`,
		`state of the art`,
		`martial art`,
	),
	// The vocabulary is generic ("play", "band", "art"), so a single
	// core hit is not enough on its own.
	minCore: 2,
}

// IsArtsCultureEvent reports whether the text describes an event in the
// arts and culture domain.
func IsArtsCultureEvent(text string) bool {
	return artsDetector.match(text)
}
