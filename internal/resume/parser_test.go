package resume

import (
	"context"
	"reflect"
	"testing"
)

func TestExtractSkillsTagsKeywords(t *testing.T) {
	text := "Senior engineer with 5 years of Python and Go, building REST APIs on AWS with Docker and PostgreSQL."
	skills := ExtractSkills(text)

	want := map[string]bool{
		"Python": true, "Go": true, "Rest": true, "Api": true,
		"Aws": true, "Docker": true, "Postgresql": true,
	}
	for _, skill := range skills {
		delete(want, skill)
	}
	for missing := range want {
		t.Errorf("ExtractSkills missed %q in %v", missing, skills)
	}
}

func TestExtractSkillsDefaultsWhenNothingMatches(t *testing.T) {
	skills := ExtractSkills("I enjoy gardening and long walks.")
	want := []string{"Data Structures", "Algorithms", "Problem Solving"}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("ExtractSkills = %v, want defaults %v", skills, want)
	}
}

func TestExtractSkillsCapKeepsScanOrder(t *testing.T) {
	text := "java python javascript typescript c++ c# go rust kotlin swift react angular vue django flask spring"
	skills := ExtractSkills(text)
	if len(skills) != MaxSkills {
		t.Fatalf("ExtractSkills returned %d skills, cap is %d", len(skills), MaxSkills)
	}

	// The first MaxSkills matches in category scan order survive the cap.
	want := []string{
		"Java", "Python", "Javascript", "Typescript", "C++", "C#",
		"Go", "Rust", "Kotlin", "Swift", "React", "Angular",
	}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("ExtractSkills = %v, want scan order %v", skills, want)
	}
}

func TestExtractSkillsDeterministic(t *testing.T) {
	text := "python, go, docker, kubernetes, sql"
	first := ExtractSkills(text)
	for i := 0; i < 5; i++ {
		if got := ExtractSkills(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("ExtractSkills unstable: %v vs %v", got, first)
		}
	}
}

func TestPlainTextExtractor(t *testing.T) {
	text, err := PlainTextExtractor{}.Extract(context.Background(), []byte("hello resume"), "text/plain")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "hello resume" {
		t.Errorf("Extract = %q", text)
	}
}
