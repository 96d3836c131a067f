// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

// Package localized holds the shared representation of per-language text
// variants carried by countries, tags, tag categories and narratives.
package localized

// Text is one language variant of a localized field.
type Text struct {
	LanguageID   int    `json:"language_id"`
	LanguageCode string `json:"language_code"`
	Value        string `json:"value"`
}

// Pick returns the variant matching the predicate, or false when none does.
func Pick(texts []Text, match func(Text) bool) (Text, bool) {
	for _, t := range texts {
		if match(t) {
			return t, true
		}
	}
	return Text{}, false
}
