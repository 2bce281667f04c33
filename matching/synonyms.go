package matching

// departmentKeywords maps a department code to the free-text keywords
// that suggest a request belongs to it. The store pre-filter matches
// these against the request search text; the scoring engine
// re-validates anything that slips through.
var departmentKeywords = map[string][]string{
	"COMP": {"programming", "algorithm", "software", "coding", "javascript", "python", "java", "data structure", "computer"},
	"MATH": {"calculus", "algebra", "statistics", "geometry", "proof", "equation"},
	"PHYS": {"physics", "mechanics", "quantum", "circuit", "thermodynamics"},
	"CHEM": {"chemistry", "organic", "molecule", "stoichiometry", "titration"},
	"BIOL": {"biology", "genetics", "anatomy", "cell", "ecology"},
	"ECON": {"economics", "microeconomics", "macroeconomics", "market", "supply", "demand"},
	"ENGL": {"essay", "writing", "literature", "grammar", "thesis"},
	"STAT": {"statistics", "probability", "regression", "hypothesis"},
	"PSYC": {"psychology", "cognition", "behavioral"},
}

// KeywordsForDepartments flattens the synonym dictionary for a set of
// departments, deduplicated, preserving dictionary order per
// department.
func KeywordsForDepartments(departments []string) []string {
	seen := map[string]struct{}{}
	keywords := []string{}
	for _, d := range departments {
		for _, kw := range departmentKeywords[d] {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
