package discovery

var (
	contactSignalKeys = []string{"Email or website", "Contact information", "email"}
	focusSignalKeys   = []string{"Investment focus/industries", "Investment interests"}
	dealSignalKeys    = []string{"Notable deals or portfolio companies", "Notable investments"}
	sizeSignalKeys    = []string{"Investment size preference", "Preferences"}
)

// ScoreConfidence rates data completeness of a raw item on a 0-100 scale.
// Each independent signal adds a fixed weight; the sum is clamped at 100 as
// a safety bound. This is a completeness proxy, not an investor-quality
// judgment, and must not be confused with the priority score used for
// outreach ranking.
func ScoreConfidence(item RawItem, name string) int {
	score := 0
	if name != "" {
		score += 30
	}
	if firstValue(item, contactSignalKeys) != "" {
		score += 25
	}
	if firstValue(item, focusSignalKeys) != "" {
		score += 20
	}
	if firstValue(item, dealSignalKeys) != "" {
		score += 15
	}
	if firstValue(item, sizeSignalKeys) != "" {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}
