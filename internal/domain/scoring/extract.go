package scoring

import "strings"

// skillVocabulary is the fixed term list resumes are scanned against. Matching
// is plain substring containment, so broader terms can fire inside longer ones
// ("java" inside "javascript"). That imprecision is part of the contract;
// results stay deterministic and in vocabulary order.
var skillVocabulary = []string{
	"javascript",
	"typescript",
	"react",
	"node.js",
	"python",
	"java",
	"c++",
	"c#",
	"html",
	"css",
	"sql",
	"mongodb",
	"postgresql",
	"mysql",
	"aws",
	"azure",
	"docker",
	"kubernetes",
	"git",
	"linux",
	"windows",
	"machine learning",
	"tensorflow",
	"pytorch",
	"pandas",
	"numpy",
	"spring boot",
	"angular",
	"vue.js",
	"express",
	"django",
	"flask",
}

var experienceKeywords = []string{"experience", "work", "employment", "position", "role"}

var educationKeywords = []string{"education", "degree", "university", "college", "bachelor", "master", "phd"}

type ParsedResume struct {
	Text       string   `json:"text"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

// ExtractSkills returns the vocabulary entries present in rawText,
// case-insensitively, in vocabulary order.
func ExtractSkills(rawText string) []string {
	lower := strings.ToLower(rawText)

	found := make([]string, 0)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// ParseResume runs the skill scan plus a shallow section-keyword scan for
// experience and education hints. It is not document parsing: the input must
// already be plain text.
func ParseResume(rawText string) ParsedResume {
	lower := strings.ToLower(rawText)

	containing := func(keywords []string) []string {
		out := make([]string, 0)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, kw)
			}
		}
		return out
	}

	return ParsedResume{
		Text:       rawText,
		Skills:     ExtractSkills(rawText),
		Experience: containing(experienceKeywords),
		Education:  containing(educationKeywords),
	}
}
