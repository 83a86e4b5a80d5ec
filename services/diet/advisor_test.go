package diet

import (
	"strings"
	"testing"

	"swasthya/knowledge"
	"swasthya/models"
)

func fixtureAdvisor() *KBAdvisor {
	records := []models.DiseaseRecord{
		{DiseaseID: "0", Lang: "en", DiseaseName: "Anemia", Aliases: []string{"low hemoglobin"}},
		{DiseaseID: "0", Lang: "hi", DiseaseName: "एनीमिया"},
		{DiseaseID: "3", Lang: "en", DiseaseName: "Tuberculosis"},
	}
	recs := []knowledge.RecommendationEntry{
		{DiseaseID: "0", Lang: "en", Recommendation: models.Prescription{Do: []string{"eat iron-rich food"}}},
		{DiseaseID: "0", Lang: "hi", Recommendation: models.Prescription{Do: []string{"आयरन युक्त भोजन खाएं"}}},
	}
	return NewKBAdvisor(knowledge.NewBase(records, recs))
}

func TestAdviseByID(t *testing.T) {
	a := fixtureAdvisor()
	p, err := a.Advise("0", "en")
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if len(p.Do) != 1 || p.Do[0] != "eat iron-rich food" {
		t.Errorf("prescription = %+v", p)
	}
}

func TestAdviseByNameAndAlias(t *testing.T) {
	a := fixtureAdvisor()
	for _, query := range []string{"Anemia", "anemia", "low hemoglobin"} {
		if _, err := a.Advise(query, "en"); err != nil {
			t.Errorf("Advise(%q) failed: %v", query, err)
		}
	}
}

func TestAdviseDetectsLanguageFromQuery(t *testing.T) {
	a := fixtureAdvisor()
	p, err := a.Advise("एनीमिया", "")
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if p.Do[0] != "आयरन युक्त भोजन खाएं" {
		t.Errorf("prescription not localized: %+v", p)
	}
}

func TestAdviseLanguageFallback(t *testing.T) {
	a := fixtureAdvisor()
	// No Tamil recommendation exists; the English one serves.
	p, err := a.Advise("0", "ta")
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if p.Do[0] != "eat iron-rich food" {
		t.Errorf("prescription = %+v", p)
	}
}

func TestAdviseUnknownDisease(t *testing.T) {
	a := fixtureAdvisor()
	_, err := a.Advise("unknownitis", "en")
	if err == nil || !strings.Contains(err.Error(), "Disease 'unknownitis' not found") {
		t.Errorf("err = %v", err)
	}
}

func TestAdviseDiseaseWithoutAdvice(t *testing.T) {
	a := fixtureAdvisor()
	_, err := a.Advise("tuberculosis", "en")
	if err == nil || !strings.Contains(err.Error(), "No diet advice found") {
		t.Errorf("err = %v", err)
	}
}
