package scoring

import (
	"reflect"
	"testing"
)

func TestScore_EqualWeightPartialMatch(t *testing.T) {
	res := Score(
		[]string{"python"},
		"seasoned python developer with a Bachelor of Science",
		[]string{"Python", "SQL"},
		[]string{"bachelor"},
		nil,
	)

	if res.SkillMatches["Python"] != 1 || res.SkillMatches["SQL"] != 0 {
		t.Fatalf("unexpected skill matches: %v", res.SkillMatches)
	}
	if res.TotalSkillScore != 0.5 {
		t.Fatalf("expected totalSkillScore 0.5, got %v", res.TotalSkillScore)
	}
	if res.MatchDetails.KeywordMatchPercentage != 100 {
		t.Fatalf("expected keyword pct 100, got %v", res.MatchDetails.KeywordMatchPercentage)
	}
	if res.MatchDetails.SkillMatchPercentage != 50 {
		t.Fatalf("expected skill pct 50, got %v", res.MatchDetails.SkillMatchPercentage)
	}
	if res.OverallScore != 65.00 {
		t.Fatalf("expected overall 65.00, got %v", res.OverallScore)
	}
}

func TestScore_EmptyListsAreZeroNotNaN(t *testing.T) {
	res := Score(nil, "", nil, []string{"x"}, nil)

	if res.MatchDetails.SkillMatchPercentage != 0 {
		t.Fatalf("expected skill pct 0, got %v", res.MatchDetails.SkillMatchPercentage)
	}
	if res.MatchDetails.KeywordMatchPercentage != 0 {
		t.Fatalf("expected keyword pct 0, got %v", res.MatchDetails.KeywordMatchPercentage)
	}
	if res.OverallScore != 0 {
		t.Fatalf("expected overall 0, got %v", res.OverallScore)
	}

	res = Score(nil, "anything", []string{}, []string{}, nil)
	if res.OverallScore != 0 || res.MatchDetails.TotalSkillsRequired != 0 {
		t.Fatalf("empty job definition must score 0, got %+v", res)
	}
}

func TestScore_SkillMatchedViaTextSubstring(t *testing.T) {
	// Skill absent from the extracted list but present in the raw text still counts.
	res := Score(nil, "worked with Kubernetes in production", []string{"kubernetes"}, nil, nil)

	if res.SkillMatches["kubernetes"] != 1 {
		t.Fatalf("expected text substring match, got %v", res.SkillMatches)
	}
	if res.TotalSkillScore != 1 {
		t.Fatalf("expected totalSkillScore 1, got %v", res.TotalSkillScore)
	}
	if res.OverallScore != 70 {
		t.Fatalf("expected overall 70, got %v", res.OverallScore)
	}
}

func TestScore_WeightsNotRenormalized(t *testing.T) {
	// Recruiter-supplied weights summing past 1 push the nominal score past 100.
	res := Score(
		[]string{"go", "sql"},
		"go and sql",
		[]string{"go", "sql"},
		[]string{"go"},
		map[string]float64{"go": 1, "sql": 0.8},
	)

	if res.TotalSkillScore != 1.8 {
		t.Fatalf("expected totalSkillScore 1.8, got %v", res.TotalSkillScore)
	}
	want := round2(1.8*70 + 100*0.3)
	if res.OverallScore != want {
		t.Fatalf("expected overall %v, got %v", want, res.OverallScore)
	}
}

func TestScore_ZeroWeightFallsBackToEqualShare(t *testing.T) {
	res := Score(nil, "python", []string{"python", "sql"}, nil, map[string]float64{"python": 0})

	if res.TotalSkillScore != 0.5 {
		t.Fatalf("expected fallback weight 0.5, got %v", res.TotalSkillScore)
	}
}

func TestScore_KeywordMatchingIsBinaryAndCaseInsensitive(t *testing.T) {
	res := Score(nil, "Bachelor bachelor BACHELOR", nil, []string{"Bachelor", "master"}, nil)

	if res.KeywordMatches["Bachelor"] != 1 {
		t.Fatalf("expected Bachelor matched once, got %v", res.KeywordMatches)
	}
	if res.KeywordMatches["master"] != 0 {
		t.Fatalf("expected master unmatched, got %v", res.KeywordMatches)
	}
	if res.MatchDetails.KeywordMatchPercentage != 50 {
		t.Fatalf("expected keyword pct 50, got %v", res.MatchDetails.KeywordMatchPercentage)
	}
}

func TestScore_Deterministic(t *testing.T) {
	skills := []string{"python"}
	text := "python developer, bachelor degree"
	jobSkills := []string{"Python", "SQL", "Docker"}
	keywords := []string{"bachelor", "remote"}
	weights := map[string]float64{"Python": 0.6}

	a := Score(skills, text, jobSkills, keywords, weights)
	b := Score(skills, text, jobSkills, keywords, weights)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("score is not deterministic:\n%+v\n%+v", a, b)
	}
}
