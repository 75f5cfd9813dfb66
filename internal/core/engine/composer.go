package engine

import (
	"math/rand"

	"github.com/sossoukouame/kousossou-bot-be/internal/models"
)

// Composer turns a matched knowledge entry into the final reply: it picks an
// answer variant at random and wraps it with tone-appropriate phrasing.
// Synthetic replies (identity, small talk) never go through the composer.
type Composer struct {
	rnd *rand.Rand
}

func NewComposer(rnd *rand.Rand) *Composer {
	return &Composer{rnd: rnd}
}

// Compose selects one of the entry's answer variants and applies the tone
// intro/outro for the entry's "ton" label (default neutre).
func (c *Composer) Compose(entry *models.Knowledge) string {
	variants := entry.Variants()
	answer := variants[c.rnd.Intn(len(variants))]

	ton := entry.Ton
	if ton == "" {
		ton = "neutre"
	}
	return introByTone(ton) + answer + "\n\n" + outroByTone(ton)
}

func introByTone(ton string) string {
	switch ton {
	case "joyeux":
		return "C'est un plaisir de te lire ! "
	case "triste":
		return "Je suis vraiment désolé de l'apprendre... "
	case "affectif":
		return "Oh, c'est touchant. "
	case "serieux":
		return "C'est une question importante. "
	default:
		return ""
	}
}

func outroByTone(ton string) string {
	switch ton {
	case "joyeux":
		return "Dis-moi, qu'est-ce qui te rend aussi enthousiaste aujourd'hui ?"
	case "triste":
		return "N'hésite pas à m'en dire plus si tu as besoin de parler, je suis là pour toi."
	case "affectif":
		return "C'est précieux ce que tu partages. Comment te sens-tu par rapport à ça ?"
	case "serieux":
		return "J'espère que cela t'éclaire. Souhaites-tu approfondir un point particulier ?"
	default:
		return "Comment puis-je t'aider davantage ?"
	}
}
