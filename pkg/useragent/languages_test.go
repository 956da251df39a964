package useragent_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/uadetect/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguages(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   []string
	}{
		{name: "quality ordering", header: "fr-CH, fr;q=0.9, en;q=0.8, *;q=0.5", want: []string{"fr-ch", "fr", "en", "*"}},
		{name: "reordered by quality", header: "en;q=0.5,de,fr;q=0.8", want: []string{"de", "fr", "en"}},
		{name: "equal priority keeps header order", header: "nl,de,en", want: []string{"nl", "de", "en"}},
		{name: "duplicate keeps first position last value", header: "en;q=0.1,de;q=0.5,en;q=0.5", want: []string{"en", "de"}},
		{name: "duplicate moves down", header: "en,de;q=0.5,en;q=0.2", want: []string{"de", "en"}},
		{name: "empty q means 1", header: "de;q=0.5,en;", want: []string{"en", "de"}},
		{name: "unparseable q sorts last", header: "xx;q=abc,en;q=0.1", want: []string{"en", "xx"}},
		{name: "empty tags skipped", header: ",, en , ;q=0.5", want: []string{"en"}},
		{name: "empty header", header: "", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, useragent.ParseLanguages(tc.header))
		})
	}
}

func TestParseLanguagePreferences(t *testing.T) {
	t.Run("priorities", func(t *testing.T) {
		got := useragent.ParseLanguagePreferences("fr-CH, fr;q=0.9, en;q=0.8, *;q=0.5")
		assert.Equal(t, []useragent.Language{
			{Tag: "fr-ch", Priority: 1.0},
			{Tag: "fr", Priority: 0.9},
			{Tag: "en", Priority: 0.8},
			{Tag: "*", Priority: 0.5},
		}, got)
	})

	t.Run("priority is clamped", func(t *testing.T) {
		got := useragent.ParseLanguagePreferences("en;q=5,de;q=-1")
		require.Len(t, got, 2)
		assert.Equal(t, useragent.Language{Tag: "en", Priority: 1}, got[0])
		assert.Equal(t, useragent.Language{Tag: "de", Priority: 0}, got[1])
	})

	t.Run("oversized header drops the entry crossing the limit", func(t *testing.T) {
		filler := strings.Repeat("a", 4090)
		got := useragent.ParseLanguages("en," + filler + ",de-CH")
		assert.Equal(t, []string{"en", filler}, got)
	})

	t.Run("oversized header keeps an entry ending at the limit", func(t *testing.T) {
		filler := strings.Repeat("a", 4093)
		got := useragent.ParseLanguages("en," + filler + ",de-CH")
		assert.Equal(t, []string{"en", filler}, got)
	})

	t.Run("oversized single entry", func(t *testing.T) {
		assert.Empty(t, useragent.ParseLanguagePreferences(strings.Repeat("x", 5000)))
	})

	t.Run("empty header", func(t *testing.T) {
		assert.Empty(t, useragent.ParseLanguagePreferences(""))
	})
}

func TestNegotiateLanguage(t *testing.T) {
	supported := []string{"en", "de", "fr-CA"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "exact match", header: "de,en;q=0.5", want: "de"},
		{name: "exact match is case-insensitive", header: "FR-ca", want: "fr-ca"},
		{name: "base language fallback", header: "en-GB,it;q=0.8", want: "en"},
		{name: "exact beats base", header: "de-AT,en;q=0.5", want: "en"},
		{name: "zero priority ignored", header: "de;q=0,it", want: "pl"},
		{name: "no match", header: "it,es", want: "pl"},
		{name: "empty header", header: "", want: "pl"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, useragent.NegotiateLanguage(tc.header, supported, "pl"))
		})
	}
}
