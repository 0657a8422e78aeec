package scamradar

import (
	"regexp"
	"strings"
)

// AdvisoryTag is a pre-screen hint shown before submission. Tags never block
// the submission and never affect the server-side analysis.
type AdvisoryTag struct {
	Label  string `json:"label"`
	Phrase string `json:"phrase"`
}

type prescanPattern struct {
	label   string
	pattern *regexp.Regexp
}

// The eight suspicious-phrase patterns behind the advisory hints.
var prescanPatterns = []prescanPattern{
	{"Unusual payment method", regexp.MustCompile(`(?i)\b(zelle|western union|moneygram|gift\s*cards?|wire\s+transfer|money\s*order|cash\s*app)\b`)},
	{"Upfront fee requested", regexp.MustCompile(`(?i)(registration|processing|training|security)\s+(fee|deposit|charge)|pay\s+(a\s+)?(fee|deposit)\s+(up\s*front|upfront|before)`)},
	{"Asks for banking details", regexp.MustCompile(`(?i)(bank\s+account|routing)\s+(number|details)|account\s+and\s+routing|net\s*banking\s+(password|pin)`)},
	{"Too-good-to-be-true pay", regexp.MustCompile(`(?i)(earn|make)\s+(up\s+to\s+)?[$₹]?\s?\d[\d,]*\s*(per|a|\/)\s*(day|hour|week)|no\s+experience\s+(needed|required)`)},
	{"Artificial urgency", regexp.MustCompile(`(?i)(respond|reply|act|join|pay)\s+(immediately|within\s+\d+\s+hours?|today\s+only)|limited\s+(slots?|seats?|positions?)`)},
	{"Non-corporate contact email", regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@(gmail|yahoo|hotmail|outlook|rediffmail)\.[a-z.]+`)},
	{"Chat-app-only contact", regexp.MustCompile(`(?i)\b(whats\s*app|telegram|signal)\b.{0,40}\b(only|contact|message|ping)\b|\b(contact|message|ping)\b.{0,40}\b(whats\s*app|telegram|signal)\b`)},
	{"Cryptocurrency payment", regexp.MustCompile(`(?i)\b(bitcoin|btc|ethereum|usdt|crypto(currency)?)\b`)},
}

// PreScan runs the offer text through the suspicious-phrase patterns and
// returns one advisory tag per matched pattern, with the first matched phrase
// attached for display.
func PreScan(offerText string) []AdvisoryTag {
	text := strings.TrimSpace(offerText)
	if text == "" {
		return nil
	}

	var tags []AdvisoryTag
	for _, p := range prescanPatterns {
		if match := p.pattern.FindString(text); match != "" {
			tags = append(tags, AdvisoryTag{Label: p.label, Phrase: match})
		}
	}
	return tags
}
