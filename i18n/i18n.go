// Package i18n resolves user-facing strings with a language → English →
// empty-string fallback chain.
package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// Params carries named placeholder values for Format.
type Params map[string]string

var placeholderRe = regexp.MustCompile(`\{[a-z_]+\}`)

var translations = map[string]map[string]string{
	"en": {
		"identified":    "Based on your symptoms, we have identified: {disease}",
		"urgency_label": "Urgency Level: {urgency}",
		"ask_next":      "What would you like to know more about?",
		"disease_label": "Disease:",
		"def_label":     "Definition:",
		"sym_label":     "Common Symptoms:",
		"rec_header":    "Recommendations:",
		"do_label":      "Do:",
		"dont_label":    "Don't:",
		"remedy_label":  "Home Remedies:",
		"no_data":       "No recommendation data available.",
		"error_model":   "Error: Model returned no result. Please try again.",
		"desc_opt":      "Disease Description",
		"rec_opt":       "Diet Recommendation",
		"start_opt":     "Start Over",
		"no_sym":        "No symptoms listed",
	},
	"ta": {
		"identified":    "உங்கள் அறிகுறிகளின் அடிப்படையில், நாங்கள் கண்டறிந்தது: {disease}",
		"urgency_label": "அவசர நிலை: {urgency}",
		"ask_next":      "நீங்கள் எதைப் பற்றி மேலும் அறிய விரும்புகிறீர்கள்?",
		"disease_label": "நோய்:",
		"def_label":     "விளக்கம்:",
		"sym_label":     "பொதுவான அறிகுறிகள்:",
		"rec_header":    "பரிந்துரைகள்:",
		"do_label":      "செய்ய வேண்டியவை:",
		"dont_label":    "செய்யக்கூடாதவை:",
		"remedy_label":  "வீட்டு வைத்தியம்:",
		"no_data":       "பரிந்துரை தரவு கிடைக்கவில்லை.",
		"error_model":   "பிழை: மாதிரி எந்த முடிவும் அளிக்காவிட்டால் மீண்டும் முயற்சிக்கவும்.",
		"desc_opt":      "Disease Description (நோய் விளக்கம்)",
		"rec_opt":       "Diet Recommendation (உணவு பரிந்துரை)",
		"start_opt":     "Start Over (மீண்டும் தொடங்க)",
		"no_sym":        "அறிகுறிகள் எதுவும் பட்டியலிடப்படவில்லை",
	},
	"hi": {
		"identified":    "आपके लक्षणों के आधार पर, हमने पहचाना है: {disease}",
		"urgency_label": "तात्कालिकता स्तर: {urgency}",
		"ask_next":      "आप किसके बारे में अधिक जानना चाहेंगे?",
		"disease_label": "रोग:",
		"def_label":     "परिभाषा:",
		"sym_label":     "सामान्य लक्षण:",
		"rec_header":    "सिफारिशें:",
		"do_label":      "क्या करें:",
		"dont_label":    "क्या न करें:",
		"remedy_label":  "घरेलू उपचार:",
		"no_data":       "कोई सिफारिश डेटा उपलब्ध नहीं है।",
		"error_model":   "त्रुटि: मॉडल ने कोई परिणाम नहीं दिया। कृपया पुनः प्रयास करें।",
		"desc_opt":      "Disease Description (रोग विवरण)",
		"rec_opt":       "Diet Recommendation (आहार सिफारिश)",
		"start_opt":     "Start Over (शुरू से करें)",
		"no_sym":        "कोई लक्षण सूचीबद्ध नहीं",
	},
}

// Resolve returns the string for (language, key). An unknown language falls
// back to the English table; a key missing everywhere resolves to "".
func Resolve(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	return translations["en"][key]
}

// Format resolves a template and substitutes named placeholders. A template
// placeholder left without a value is a caller error and is reported, never
// swallowed.
func Format(lang, key string, params Params) (string, error) {
	text := Resolve(lang, key)
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	if missing := placeholderRe.FindString(text); missing != "" {
		return "", fmt.Errorf("i18n: no value supplied for placeholder %s in %q", missing, key)
	}
	return text, nil
}
