package constant

import "time"

// Match rules
const (
	// PointsToWin ends a game on reaching it, no win-by-two
	PointsToWin = 5

	// BannerDuration is how long the between-games banner stays up
	BannerDuration = 2 * time.Second

	// BannerFrames is BannerDuration expressed in frame updates
	BannerFrames = int(BannerDuration / FrameUpdateInterval)
)

// BestOfOptions are the match lengths selectable from the menus
var BestOfOptions = [...]int{3, 5, 7}

// IsBestOfOption reports whether n is a selectable match length
func IsBestOfOption(n int) bool {
	for _, opt := range BestOfOptions {
		if opt == n {
			return true
		}
	}
	return false
}

// GamesToWin returns the majority of a best-of-n match
func GamesToWin(bestOf int) int {
	return bestOf/2 + 1
}
