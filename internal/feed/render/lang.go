package render

import (
	"golang.org/x/text/language"

	"github.com/wilyamx/thinkittwice/internal/database/types"
)

// The wire language codes predate BCP 47 and use a few house aliases.
var languageAliases = map[string]language.Tag{
	"en": language.English,
	"cn": language.SimplifiedChinese,
	"tc": language.TraditionalChinese,
	"fr": language.French,
	"jp": language.Japanese,
	"kr": language.Korean,
}

var supportedLanguages = []language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.French,
	language.Japanese,
	language.Korean,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// languageTag resolves a wire language code to the closest supported
// tag, defaulting to English for anything unrecognized.
func languageTag(code string) language.Tag {
	if tag, ok := languageAliases[code]; ok {
		return tag
	}

	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}

	matched, _, _ := languageMatcher.Match(tag)
	return matched
}

// pickTranslation returns the translation best matching the requested
// language, or nil when none matches better than the base record.
func pickTranslation(translations []types.Translation, code string) *types.Translation {
	if len(translations) == 0 {
		return nil
	}

	want := languageTag(code)
	for i := range translations {
		if languageTag(translations[i].Language) == want {
			return &translations[i]
		}
	}

	return nil
}

// tipTranslation adapts the tip translation slice for pickTranslation.
func tipTranslation(rows []*types.TipTranslation, code string) *types.Translation {
	flat := make([]types.Translation, len(rows))
	for i, row := range rows {
		flat[i] = row.Translation
	}
	return pickTranslation(flat, code)
}

// articleTranslation adapts the article translation slice.
func articleTranslation(rows []*types.ArticleTranslation, code string) *types.Translation {
	flat := make([]types.Translation, len(rows))
	for i, row := range rows {
		flat[i] = row.Translation
	}
	return pickTranslation(flat, code)
}

// cultureTranslation adapts the culture translation slice.
func cultureTranslation(rows []*types.CultureTranslation, code string) *types.Translation {
	flat := make([]types.Translation, len(rows))
	for i, row := range rows {
		flat[i] = row.Translation
	}
	return pickTranslation(flat, code)
}
