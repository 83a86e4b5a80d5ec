package i18n

import "testing"

func TestResolveFallbackChain(t *testing.T) {
	testCases := []struct {
		name     string
		lang     string
		key      string
		expected string
	}{
		{"known language and key", "hi", "do_label", "क्या करें:"},
		{"unknown language falls back to english", "fr", "do_label", "Do:"},
		{"language without the key falls back to english", "zz", "no_data", "No recommendation data available."},
		{"unknown key resolves empty", "en", "no_such_key", ""},
		{"unknown key in unknown language resolves empty", "fr", "no_such_key", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.lang, tc.key); got != tc.expected {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tc.lang, tc.key, got, tc.expected)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got, err := Format("en", "identified", Params{"disease": "Anemia"})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	want := "Based on your symptoms, we have identified: Anemia"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatLocalizedTemplate(t *testing.T) {
	got, err := Format("ta", "urgency_label", Params{"urgency": "அவசரம்"})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "அவசர நிலை: அவசரம்" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatMissingPlaceholderIsError(t *testing.T) {
	if _, err := Format("en", "identified", nil); err == nil {
		t.Error("expected error for unfilled placeholder, got nil")
	}
}

func TestFormatExtraParamsIgnored(t *testing.T) {
	got, err := Format("en", "ask_next", Params{"disease": "unused"})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "What would you like to know more about?" {
		t.Errorf("Format = %q", got)
	}
}

func TestEveryLanguageCoversEveryKey(t *testing.T) {
	for key := range translations["en"] {
		for lang, table := range translations {
			if table[key] == "" {
				t.Errorf("language %q missing key %q", lang, key)
			}
		}
	}
}
