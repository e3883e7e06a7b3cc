package resume

import (
	"context"
	"strings"
)

// TextExtractor converts an uploaded document into plain text. Format-specific
// conversion (PDF, Word) is an external collaborator; this package only tags
// skills over the extracted text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mediaType string) (string, error)
}

// PlainTextExtractor treats the upload as UTF-8 text regardless of the
// declared media type.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(ctx context.Context, data []byte, mediaType string) (string, error) {
	return string(data), nil
}

// MaxSkills caps how many tagged skills are reported.
const MaxSkills = 12

// skillPatterns is ordered; the scan order decides which skills survive the
// cap, so categories are a slice rather than a map.
var skillPatterns = [][]string{
	{"java", "python", "javascript", "typescript", "c++", "c#", "go", "rust", "kotlin", "swift"},
	{"react", "angular", "vue", "django", "flask", "spring", "node", "express", "fastapi"},
	{"sql", "mysql", "postgresql", "mongodb", "redis", "cassandra", "dynamodb"},
	{"git", "docker", "kubernetes", "aws", "azure", "gcp", "jenkins", "terraform"},
	{"algorithm", "data structure", "system design", "machine learning", "api", "rest", "graphql"},
}

var defaultSkills = []string{"Data Structures", "Algorithms", "Problem Solving"}

// ExtractSkills tags skills in resume text by keyword presence across the
// pattern categories, in scan order, capped at MaxSkills. An empty match set
// yields the default skill list.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]bool)
	skills := make([]string, 0, MaxSkills)
	for _, category := range skillPatterns {
		for _, skill := range category {
			if len(skills) == MaxSkills {
				return skills
			}
			if strings.Contains(lower, skill) && !seen[skill] {
				seen[skill] = true
				skills = append(skills, strings.ToUpper(skill[:1])+skill[1:])
			}
		}
	}

	if len(skills) == 0 {
		return append([]string(nil), defaultSkills...)
	}
	return skills
}
