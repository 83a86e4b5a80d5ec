package knowledge

import (
	"testing"

	"swasthya/models"
)

func fixtureBase() *Base {
	records := []models.DiseaseRecord{
		{
			DiseaseID:   "54",
			Lang:        "en",
			DiseaseName: "Iron Deficiency Anemia",
			Aliases:     []string{"IDA", "iron deficiency"},
			Definition:  "Anemia caused by insufficient iron.",
			Symptoms:    []string{"fatigue", "brittle nails"},
		},
		{
			DiseaseID:   "54",
			Lang:        "hi",
			DiseaseName: "आयरन की कमी से एनीमिया",
			Symptoms:    []string{"थकान"},
		},
		{
			DiseaseID:   "3",
			Lang:        "en",
			DiseaseName: "Tuberculosis",
		},
	}
	recs := []RecommendationEntry{
		{
			DiseaseID:      "54",
			Lang:           "en",
			Recommendation: models.Prescription{Do: []string{"eat leafy greens"}},
		},
	}
	return NewBase(records, recs)
}

func TestDiseaseLookupWithLanguageFallback(t *testing.T) {
	b := fixtureBase()

	rec, ok := b.Disease("54", "hi")
	if !ok || rec.DiseaseName != "आयरन की कमी से एनीमिया" {
		t.Errorf("hi lookup = (%+v, %v)", rec, ok)
	}

	// Tamil record absent: the English one serves.
	rec, ok = b.Disease("54", "ta")
	if !ok || rec.DiseaseName != "Iron Deficiency Anemia" {
		t.Errorf("ta fallback = (%+v, %v)", rec, ok)
	}

	if _, ok := b.Disease("999", "en"); ok {
		t.Error("unknown id reported found")
	}
}

func TestPrescriptionLanguageFallback(t *testing.T) {
	b := fixtureBase()

	p, ok := b.Prescription("54", "hi")
	if !ok || len(p.Do) != 1 || p.Do[0] != "eat leafy greens" {
		t.Errorf("hi fallback = (%+v, %v)", p, ok)
	}

	if _, ok := b.Prescription("3", "en"); ok {
		t.Error("id without recommendations reported found")
	}
}

func TestResolveNameAndAliases(t *testing.T) {
	testCases := []struct {
		query    string
		expected string
	}{
		{"Iron Deficiency Anemia", "54"},
		{"iron deficiency anemia", "54"},
		{"IDA", "54"},
		{"ida", "54"},
		{"  iron deficiency  ", "54"},
		{"आयरन की कमी से एनीमिया", "54"},
		{"tuberculosis", "3"},
	}
	b := fixtureBase()
	for _, tc := range testCases {
		id, ok := b.ResolveName(tc.query)
		if !ok || id != tc.expected {
			t.Errorf("ResolveName(%q) = (%q, %v), want %q", tc.query, id, ok, tc.expected)
		}
	}

	if _, ok := b.ResolveName("unknownitis"); ok {
		t.Error("unknown name resolved")
	}
}

func TestInfoByName(t *testing.T) {
	b := fixtureBase()

	info, ok := b.InfoByName("iron deficiency anemia")
	if !ok {
		t.Fatal("canonical name not found")
	}
	if info.Name != "Iron Deficiency Anemia" || info.Definition != "Anemia caused by insufficient iron." {
		t.Errorf("info = %+v", info)
	}

	// A record without a definition still answers, with a stock line.
	info, ok = b.InfoByName("Tuberculosis")
	if !ok || info.Definition != "Definition not available." {
		t.Errorf("info = (%+v, %v)", info, ok)
	}

	if _, ok := b.InfoByName("unknownitis"); ok {
		t.Error("unknown name reported found")
	}
}
