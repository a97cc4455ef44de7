package localization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		culture string
		key     string
		want    string
	}{
		{"en", DramaKey, "Drama"},
		{"ru", DramaKey, "Драма"},
		{"it", DramaKey, "Dramma"},
		{"it", ComedyKey, "Commedia"},
		{"ru", "Header3", "Итого"},
		{"fr", DramaKey, ""},
		{"en", "UnknownKey", ""},
		{"", HorrorKey, ""},
	}

	for _, tt := range tests {
		t.Run(tt.culture+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.culture, tt.key))
		})
	}
}

func TestTranslateAll(t *testing.T) {
	assert.Equal(t, []string{"Title", "Summary", "Total"}, TranslateAll("en", ReportRows))
	assert.Equal(t, []string{"", "", ""}, TranslateAll("de", ReportRows))
}

func TestEveryCultureCoversEveryKey(t *testing.T) {
	keys := append([]string{DramaKey, HorrorKey, ComedyKey}, ReportRows...)
	for _, culture := range Cultures() {
		for _, key := range keys {
			assert.NotEmpty(t, Translate(culture, key), "%s/%s", culture, key)
		}
	}
}

func TestParseCulture(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"", "en", true},
		{"ru", "ru", true},
		{"it-IT", "it", true},
		{"en-US,en;q=0.9", "en", true},
		{"fr;q=0.5, ru;q=0.9", "ru", true},
		{"@@@not a tag", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := ParseCulture(tt.header)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCultureContext(t *testing.T) {
	assert.Equal(t, DefaultCulture, CultureFrom(context.Background()))

	ctx := WithCulture(context.Background(), "it")
	assert.Equal(t, "it", CultureFrom(ctx))
}
