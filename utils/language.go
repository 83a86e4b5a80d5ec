package utils

// SupportedLanguages is the set of languages the symptom predictor handles
// natively. Anything else is translated to English first.
var SupportedLanguages = map[string]bool{
	"ta": true, "mr": true, "hi": true, "te": true, "ml": true,
	"kn": true, "gu": true, "as": true, "bn": true, "en": true,
}

// DetectLanguage guesses the language of text from Unicode script ranges.
// Marathi vs Hindi and Assamese vs Bengali share a script and are told apart
// by a letter unique to one of the pair.
func DetectLanguage(text string) string {
	for _, ch := range text {
		switch {
		case ch >= 0x0B80 && ch <= 0x0BFF:
			return "ta"
		case ch >= 0x0900 && ch <= 0x097F:
			if containsRune(text, 'ळ') {
				return "mr"
			}
			return "hi"
		case ch >= 0x0C00 && ch <= 0x0C7F:
			return "te"
		case ch >= 0x0D00 && ch <= 0x0D7F:
			return "ml"
		case ch >= 0x0C80 && ch <= 0x0CFF:
			return "kn"
		case ch >= 0x0A80 && ch <= 0x0AFF:
			return "gu"
		case ch >= 0x0980 && ch <= 0x09FF:
			if containsRune(text, 'ৰ') {
				return "as"
			}
			return "bn"
		}
	}
	return "en"
}

func containsRune(s string, r rune) bool {
	for _, ch := range s {
		if ch == r {
			return true
		}
	}
	return false
}
