package domain

// Category is one of the fixed topical buckets an event can belong to.
type Category string

const (
	CategoryPolitics  Category = "Politics & Government"
	CategoryConflict  Category = "War & Conflict"
	CategoryScience   Category = "Science & Technology"
	CategoryArts      Category = "Arts & Culture"
	CategorySports    Category = "Sports & Recreation"
	CategoryMedicine  Category = "Medicine & Health"
	CategoryIndian    Category = "Indian History"
	CategoryDisasters Category = "Disasters & Accidents"
	CategoryOther     Category = "Other Historical Events"
)

// Categories lists every assignable category in scoring order.
func Categories() []Category {
	return []Category{
		CategoryPolitics,
		CategoryConflict,
		CategoryScience,
		CategoryArts,
		CategorySports,
		CategoryMedicine,
		CategoryIndian,
		CategoryDisasters,
	}
}

// Event is the canonical record flowing through the pipeline. Raw
// candidates arrive from source adapters with Verified=false and no
// category; the merge engine may union sources and raise Verified, the
// classifier fills Category, and the ranker assigns RelevanceScore.
type Event struct {
	Year           string   `json:"year"`
	Text           string   `json:"text"`
	Source         string   `json:"source"`
	Verified       bool     `json:"verified"`
	Category       Category `json:"category,omitempty"`
	RelevanceScore float64  `json:"relevance_score,omitempty"`
}

// Result is what the aggregator hands to presentation layers.
type Result struct {
	Date   string  `json:"date"`
	URL    string  `json:"url"`
	Events []Event `json:"events"`
}

// QuizQuestion is one generated multiple-choice question.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// SearchResult is one hit from the keyword search flow.
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
}
