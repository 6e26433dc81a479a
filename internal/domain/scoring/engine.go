package scoring

import (
	"math"
	"strings"
)

type MatchDetails struct {
	TotalSkillsFound       int     `json:"totalSkillsFound"`
	TotalSkillsRequired    int     `json:"totalSkillsRequired"`
	SkillMatchPercentage   float64 `json:"skillMatchPercentage"`
	KeywordMatchPercentage float64 `json:"keywordMatchPercentage"`
}

type Result struct {
	OverallScore    float64        `json:"overallScore"`
	TotalSkillScore float64        `json:"totalSkillScore"`
	SkillMatches    map[string]int `json:"skillMatches"`
	KeywordMatches  map[string]int `json:"keywordMatches"`
	MatchDetails    MatchDetails   `json:"matchDetails"`
}

// Score matches a resume against a job's required skills and keywords.
//
// A skill counts as matched when it case-insensitively equals one of
// resumeSkills or occurs as a substring of resumeText. Each matched skill
// contributes its recruiter-assigned weight; a skill absent from skillWeights
// (or weighted zero) falls back to 1/len(jobSkills). Weights are taken as
// given and never re-normalized, so totalSkillScore is only a [0,1] fraction
// when the weights sum to 1.
//
// overallScore = totalSkillScore*70 + keywordMatchPercentage*0.3, rounded to
// two decimals. The asymmetric scaling (a fraction scaled by 70 against a
// 0-100 percentage scaled by 0.3) is intentional and kept verbatim; "fixing"
// it would change every historical score.
//
// Empty jobSkills or jobKeywords contribute 0 to their percentage instead of
// dividing by zero.
//
// Pure function: identical inputs always produce identical output.
func Score(resumeSkills []string, resumeText string, jobSkills, jobKeywords []string, skillWeights map[string]float64) Result {
	lowerText := strings.ToLower(resumeText)

	lowerSkills := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		lowerSkills[strings.ToLower(s)] = struct{}{}
	}

	skillMatches := make(map[string]int, len(jobSkills))
	var totalSkillScore float64
	matchedSkills := 0

	for _, skill := range jobSkills {
		lowerSkill := strings.ToLower(skill)

		weight := skillWeights[skill]
		if weight == 0 {
			weight = 1 / float64(len(jobSkills))
		}

		_, inSkills := lowerSkills[lowerSkill]
		if inSkills || strings.Contains(lowerText, lowerSkill) {
			skillMatches[skill] = 1
			totalSkillScore += weight
			matchedSkills++
		} else {
			skillMatches[skill] = 0
		}
	}

	keywordMatches := make(map[string]int, len(jobKeywords))
	keywordScore := 0

	for _, keyword := range jobKeywords {
		if strings.Contains(lowerText, strings.ToLower(keyword)) {
			keywordMatches[keyword] = 1
			keywordScore++
		} else {
			keywordMatches[keyword] = 0
		}
	}

	var skillMatchPct float64
	if len(jobSkills) > 0 {
		skillMatchPct = float64(matchedSkills) / float64(len(jobSkills)) * 100
	}

	var keywordMatchPct float64
	if len(jobKeywords) > 0 {
		keywordMatchPct = float64(keywordScore) / float64(len(jobKeywords)) * 100
	}

	overall := totalSkillScore*70 + keywordMatchPct*0.3

	return Result{
		OverallScore:    round2(overall),
		TotalSkillScore: totalSkillScore,
		SkillMatches:    skillMatches,
		KeywordMatches:  keywordMatches,
		MatchDetails: MatchDetails{
			TotalSkillsFound:       matchedSkills,
			TotalSkillsRequired:    len(jobSkills),
			SkillMatchPercentage:   round2(skillMatchPct),
			KeywordMatchPercentage: round2(keywordMatchPct),
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
