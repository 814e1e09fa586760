package titlecase

// smallWords holds the articles, coordinating conjunctions, and
// prepositions that stay lowercase in medial positions. Membership is
// checked case-insensitively against the lowercase spellings here.
var smallWords = map[string]bool{
	// Articles
	"a": true, "an": true, "the": true,

	// Coordinating conjunctions
	"and": true, "but": true, "for": true, "nor": true,
	"or": true, "so": true, "yet": true,

	// Prepositions (CMOS lowercases these regardless of length)
	"as": true, "at": true, "by": true, "in": true, "of": true,
	"off": true, "on": true, "per": true, "to": true, "up": true,
	"via": true,

	// Additional common prepositions
	"about": true, "above": true, "across": true, "after": true,
	"against": true, "along": true, "among": true, "around": true,
	"before": true, "behind": true, "below": true, "beneath": true,
	"beside": true, "between": true, "beyond": true, "down": true,
	"during": true, "except": true, "from": true, "inside": true,
	"into": true, "like": true, "near": true, "onto": true,
	"out": true, "outside": true, "over": true, "past": true,
	"since": true, "through": true, "throughout": true, "till": true,
	"toward": true, "under": true, "underneath": true, "until": true,
	"upon": true, "vs": true, "with": true, "within": true,
	"without": true,
}

// properNames maps lowercase spellings to the canonical form used in
// rendered titles. A match bypasses the capitalize/lowercase decision.
var properNames = map[string]string{
	"bitcoin":  "Bitcoin",
	"coinjoin": "CoinJoin",
}

// specialCases are literal fixups applied to the finished string, in
// order, for titles where the general rules misfire. The order is
// load-bearing: if two targets ever overlapped, the later rule would win.
var specialCases = []struct{ old, new string }{
	{"([soft/hard]forks)", "([Soft/Hard]forks)"}, // BIP 99
	{`"Version" Message`, `"version" Message`},   // BIP 60
	{"bitcoin: Uri", "bitcoin: uri"},             // BIP 72
}
