package utils

import "testing"

func TestDetectLanguage(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"tamil", "எனக்கு காய்ச்சல்", "ta"},
		{"hindi", "मुझे बुखार है", "hi"},
		{"marathi", "मला ताप आळा आहे", "mr"},
		{"telugu", "నాకు జ్వరం", "te"},
		{"malayalam", "എനിക്ക് പനി", "ml"},
		{"kannada", "ನನಗೆ ಜ್ವರ", "kn"},
		{"gujarati", "મને તાવ છે", "gu"},
		{"bengali", "আমার জ্বর হয়েছে", "bn"},
		{"assamese", "মোৰ জ্বৰ হৈছে", "as"},
		{"english", "I have a fever", "en"},
		{"empty", "", "en"},
		{"latin mixed with digits", "fever 101F since monday", "en"},
		{"hindi mixed with latin", "fever और खांसी", "hi"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLanguage(tc.text); got != tc.expected {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}

func TestSupportedLanguagesCoverDetectableScripts(t *testing.T) {
	for _, lang := range []string{"ta", "mr", "hi", "te", "ml", "kn", "gu", "as", "bn", "en"} {
		if !SupportedLanguages[lang] {
			t.Errorf("%q missing from SupportedLanguages", lang)
		}
	}
}
