package predictor

import "fmt"

// Localized urgency level names, level 0 (self-care) through 2 (emergency).
var urgencyNames = map[string]map[int]string{
	"en": {0: "Self-care", 1: "Doctor Visit", 2: "Emergency"},
	"hi": {0: "स्व-देखभाल", 1: "डॉक्टर से मिलें", 2: "आपातकाल"},
	"ta": {0: "சுய பராமரிப்பு", 1: "மருத்துவரை சந்திக்கவும்", 2: "அவசரம்"},
	"te": {0: "స్వీయ సంరక్షణ", 1: "డాక్టర్ను కలవండి", 2: "అత్యవసరం"},
	"ml": {0: "സ്വയം പരിചരണം", 1: "ഡോക്ടറെ കാണുക", 2: "ആപത്ത്"},
	"kn": {0: "ಸ್ವಯಂ ಆರೈಕೆ", 1: "ವೈದ್ಯರನ್ನು ಭೇಟಿ ಮಾಡಿ", 2: "ತುರ್ತು"},
	"gu": {0: "સ્વ-કાળજી", 1: "ડોક્ટરને મળો", 2: "એમર્જન્સી"},
	"mr": {0: "स्वतः काळजी", 1: "डॉक्टरांना भेटा", 2: "आपत्काल"},
	"bn": {0: "স্ব-যত্ন", 1: "ডাক্তারের কাছে যান", 2: "জরুরী"},
	"as": {0: "নিজকে যত্ন লওক", 1: "ডাক্টৰৰ ওচৰলৈ যাওক", 2: "জৰুৰী অৱস্থা"},
}

// UrgencyName returns the localized urgency label, falling back to English
// and then to a numbered placeholder.
func UrgencyName(lang string, id int) string {
	table, ok := urgencyNames[lang]
	if !ok {
		table = urgencyNames["en"]
	}
	if name, ok := table[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Urgency (%d)", id)
}
