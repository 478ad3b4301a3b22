package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		manual Category
		want   Category
	}{
		{"introspection first", "je me sens fatigué", "", CategoryIntrospect},
		{"task verb", "appeler le dentiste", "", CategoryTodo},
		{"task beats delegation", "demander à Paul de finir", "", CategoryTodo},
		{"delegation only", "demander un devis au plombier", "", CategoryDelegate},
		{"fallback", "bonjour", "", CategoryForget},
		{"manual override", "appeler", CategoryForget, CategoryForget},
		{"manual beats introspection", "je me sens bien", CategoryDelegate, CategoryDelegate},
		{"case insensitive", "  APPELER Maman  ", "", CategoryTodo},
		{"introspection beats task", "j'ai peur de ne pas finir", "", CategoryIntrospect},
		{"substring inside a longer word", "parfaire le gâteau", "", CategoryTodo},
		{"empty text", "", "", CategoryForget},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.text, tc.manual))
		})
	}
}

func TestClassifyAlwaysValid(t *testing.T) {
	for _, text := range []string{"", "x", "réserver", "informer l'équipe", "gratitude", "🔥"} {
		assert.True(t, Classify(text, "").Valid(), text)
	}
}
