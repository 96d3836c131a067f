// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package client

import (
	"context"
	"sort"
	"strings"

	"github.com/memora-app/memora/internal/core/localized"
	"github.com/memora-app/memora/internal/platform/constants"
)

// LanguageResolver maps a language code to its numeric id. A false return
// means the code is unknown or the language map is unavailable.
type LanguageResolver interface {
	Resolve(context context.Context, code string) (int, bool)
}

/*
Assembler turns enriched records into localized views.

# Fallback Chain

Every localized field is resolved through the same ordered chain:

 1. requested language, matched by id
 2. requested language, matched by code
 3. fallback language (English), matched by id
 4. fallback language, matched by code
 5. first available variant
 6. empty string

Matching by code covers variants whose language id could not be resolved
(for example when the language map load failed mid-request).
*/
type Assembler struct {
	languages LanguageResolver
}

func NewAssembler(languages LanguageResolver) *Assembler {
	return &Assembler{languages: languages}
}

// Picker resolves the requested language once and returns the selection
// function applied to every localized field of the response.
func (assembler *Assembler) Picker(ctx context.Context, langCode string) func([]localized.Text) string {
	requestedCode := strings.ToUpper(strings.TrimSpace(langCode))
	requestedID, requestedOK := assembler.languages.Resolve(ctx, requestedCode)
	fallbackID, fallbackOK := assembler.languages.Resolve(ctx, constants.FallbackLanguageCode)

	return func(texts []localized.Text) string {
		if len(texts) == 0 {
			return ""
		}

		if requestedOK {
			if t, ok := localized.Pick(texts, func(t localized.Text) bool { return t.LanguageID == requestedID }); ok {
				return t.Value
			}
		}
		if requestedCode != "" {
			if t, ok := localized.Pick(texts, func(t localized.Text) bool {
				return strings.EqualFold(t.LanguageCode, requestedCode)
			}); ok {
				return t.Value
			}
		}
		if fallbackOK {
			if t, ok := localized.Pick(texts, func(t localized.Text) bool { return t.LanguageID == fallbackID }); ok {
				return t.Value
			}
		}
		if t, ok := localized.Pick(texts, func(t localized.Text) bool {
			return strings.EqualFold(t.LanguageCode, constants.FallbackLanguageCode)
		}); ok {
			return t.Value
		}

		return texts[0].Value
	}
}

// # View Assembly

// AssembleFragment builds the localized view of one enriched fragment.
func (assembler *Assembler) AssembleFragment(enriched EnrichedFragment, pick func([]localized.Text) string) FragmentView {
	view := FragmentView{
		ID:           enriched.ID,
		Title:        enriched.Title,
		Duration:     enriched.Duration,
		PlayerURL:    enriched.PlayerURL,
		ThumbnailURL: enriched.ThumbnailURL,
		Tags:         make([]TagView, 0, len(enriched.Tags)),
	}

	if enriched.Person != nil {
		person := &PersonView{
			ID:   enriched.Person.ID,
			Name: enriched.Person.Name,
			Bio:  pick(enriched.Person.Bios),
		}
		if enriched.Person.Country != nil {
			person.Country = &CountryView{
				ID:   enriched.Person.Country.ID,
				Code: enriched.Person.Country.Code,
				Name: pick(enriched.Person.Country.Names),
			}
		}
		view.Person = person
	}

	for _, tag := range enriched.Tags {
		view.Tags = append(view.Tags, TagView{
			ID:         tag.ID,
			CategoryID: tag.CategoryID,
			Name:       pick(tag.Names),
		})
	}

	return view
}

// SortFragments orders fragment views by lower-cased title. The sort is
// stable so records with equal titles keep their resolved order.
func SortFragments(views []FragmentView) {
	sort.SliceStable(views, func(i, j int) bool {
		return strings.ToLower(views[i].Title) < strings.ToLower(views[j].Title)
	})
}

// SortNarratives orders narrative views by their lower-cased localized title.
func SortNarratives(views []NarrativeView) {
	sort.SliceStable(views, func(i, j int) bool {
		return strings.ToLower(views[i].Title) < strings.ToLower(views[j].Title)
	})
}
