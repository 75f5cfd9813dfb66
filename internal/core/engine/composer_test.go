package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sossoukouame/kousossou-bot-be/internal/models"
)

func TestComposeToneWrapping(t *testing.T) {
	tests := []struct {
		ton   string
		intro string
		outro string
	}{
		{"joyeux", "C'est un plaisir de te lire ! ", "Dis-moi, qu'est-ce qui te rend aussi enthousiaste aujourd'hui ?"},
		{"triste", "Je suis vraiment désolé de l'apprendre... ", "N'hésite pas à m'en dire plus si tu as besoin de parler, je suis là pour toi."},
		{"affectif", "Oh, c'est touchant. ", "C'est précieux ce que tu partages. Comment te sens-tu par rapport à ça ?"},
		{"serieux", "C'est une question importante. ", "J'espère que cela t'éclaire. Souhaites-tu approfondir un point particulier ?"},
		{"neutre", "", "Comment puis-je t'aider davantage ?"},
		{"", "", "Comment puis-je t'aider davantage ?"},
	}

	c := NewComposer(rand.New(rand.NewSource(1)))
	for _, tt := range tests {
		t.Run("ton_"+tt.ton, func(t *testing.T) {
			entry := &models.Knowledge{Question: "q", Answer: "La réponse.", Ton: tt.ton}
			got := c.Compose(entry)
			assert.Equal(t, tt.intro+"La réponse.\n\n"+tt.outro, got)
		})
	}
}

func TestComposeVariantSelection(t *testing.T) {
	c := NewComposer(rand.New(rand.NewSource(42)))
	entry := &models.Knowledge{
		Question:           "quelle heure est il",
		Answer:             "Je ne sais pas",
		AlternativeAnswers: "plus tard||bientôt",
	}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got := c.Compose(entry)
		body := strings.TrimSuffix(got, "\n\nComment puis-je t'aider davantage ?")
		assert.Contains(t, []string{"Je ne sais pas", "plus tard", "bientôt"}, body)
		seen[body] = true
	}

	// Every variant should come up over 200 draws.
	assert.Len(t, seen, 3)
}
