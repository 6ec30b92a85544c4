package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wilyamx/thinkittwice/internal/database/types"
	"golang.org/x/text/language"
)

func TestLanguageTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want language.Tag
	}{
		{code: "en", want: language.English},
		{code: "cn", want: language.SimplifiedChinese},
		{code: "tc", want: language.TraditionalChinese},
		{code: "jp", want: language.Japanese},
		{code: "kr", want: language.Korean},
		{code: "fr", want: language.French},
		// BCP 47 input still resolves through the matcher.
		{code: "en-US", want: language.English},
		// Garbage falls back to English.
		{code: "??", want: language.English},
		{code: "", want: language.English},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, languageTag(tt.code), "code %q", tt.code)
	}
}

func TestPickTranslation(t *testing.T) {
	t.Parallel()

	translations := []types.Translation{
		{Language: "en", Title: "English title"},
		{Language: "cn", Title: "中文标题"},
	}

	got := pickTranslation(translations, "cn")
	assert.NotNil(t, got)
	assert.Equal(t, "中文标题", got.Title)

	// No matching language: caller falls back to the base record.
	assert.Nil(t, pickTranslation(translations, "kr"))
	assert.Nil(t, pickTranslation(nil, "en"))
}

func TestReminderTextFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, reminderTexts["en"], reminderText("xx"))
	assert.Equal(t, reminderTexts["jp"], reminderText("jp"))
}
