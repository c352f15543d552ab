package scoring

import "strings"

// Rating is the star score shown on the win screen.
type Rating struct {
	Stars   int
	Message string
}

// ratingTable is ordered from best to worst; the first tier whose ceiling
// is not exceeded by moves/pairs wins.
var ratingTable = []struct {
	maxRatio float64
	rating   Rating
}{
	{1.2, Rating{Stars: 3, Message: "Outstanding! Near perfect!"}},
	{1.5, Rating{Stars: 2, Message: "Great job! Well played!"}},
	{2.0, Rating{Stars: 1, Message: "Good effort! Keep practicing!"}},
}

var fallbackRating = Rating{Stars: 0, Message: "Nice try! Play again to improve!"}

// Rate scores a finished game by moves per pair. Time is not considered.
func Rate(moves, pairCount int) Rating {
	if pairCount <= 0 {
		return fallbackRating
	}
	ratio := float64(moves) / float64(pairCount)
	for _, tier := range ratingTable {
		if ratio <= tier.maxRatio {
			return tier.rating
		}
	}
	return fallbackRating
}

// Glyphs renders the stars, e.g. "★★☆".
func (r Rating) Glyphs() string {
	return strings.Repeat("★", r.Stars) + strings.Repeat("☆", 3-r.Stars)
}
