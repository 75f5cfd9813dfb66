package engine

import (
	"math/rand"
	"strings"

	"github.com/sossoukouame/kousossou-bot-be/internal/core/nlp"
	"github.com/sossoukouame/kousossou-bot-be/internal/models"
)

// Confidence assigned by each match rule.
const (
	ConfidenceExact      = 100
	ConfidenceFuzzy      = 85
	ConfidenceContextual = 75
)

// IdentityAnswer is returned for any question about who the bot is.
const IdentityAnswer = "Je suis l'IA Kousossou, créée par Sossou Kouamé Appolinaire, développeur web."

var identityPhrases = []string{
	"comment tu t'appelles",
	"qui es tu",
	"ton nom",
	"qui t'a cree",
}

var smallTalkTokens = []string{"ok", "d'accord", "cool", "c'est bien", "super", "genial", "magnifique"}

// SmallTalkReplies are the acknowledgement replies picked at random when the
// whole question is one of the small-talk tokens.
var SmallTalkReplies = []string{
	"C'est super ! Je suis ravi que ça te plaise.",
	"D'accord, je suis là si tu as besoin d'autre chose.",
	"Génial ! Continuons notre discussion si tu veux.",
	"Merci ! C'est un plaisir d'échanger avec toi.",
}

// Context carries the optional last exchange supplied by the client.
type Context struct {
	LastQuestion string
	LastAnswer   string
}

// Result is a tagged match outcome: a knowledge match carries Entry, a
// synthetic reply (identity, small talk) carries Text and no entry.
type Result struct {
	Entry      *models.Knowledge
	Text       string
	Confidence int
}

// Synthetic reports whether the result is an intent reply rather than a
// knowledge base match.
func (r *Result) Synthetic() bool {
	return r.Entry == nil
}

// Matcher evaluates a question against the knowledge entries. The random
// source is injected so tests can seed it.
type Matcher struct {
	rnd *rand.Rand
}

func NewMatcher(rnd *rand.Rand) *Matcher {
	return &Matcher{rnd: rnd}
}

// Find returns the best match for question, or nil when nothing applies.
// Rules are tried in order: identity intent, small talk, exact match, fuzzy
// containment, contextual match. Entries must be in ascending id order so
// containment ties go to the lowest id.
func (m *Matcher) Find(entries []models.Knowledge, question string, conv *Context) *Result {
	normalized := nlp.Normalize(question)

	for _, phrase := range identityPhrases {
		if strings.Contains(normalized, phrase) {
			return &Result{Text: IdentityAnswer, Confidence: ConfidenceExact}
		}
	}

	for _, token := range smallTalkTokens {
		if normalized == token {
			reply := SmallTalkReplies[m.rnd.Intn(len(SmallTalkReplies))]
			return &Result{Text: reply, Confidence: ConfidenceExact}
		}
	}

	if entry := exactMatch(entries, normalized); entry != nil {
		return knowledgeResult(entry, ConfidenceExact)
	}
	if entry := fuzzyMatch(entries, normalized); entry != nil {
		return knowledgeResult(entry, ConfidenceFuzzy)
	}
	if conv != nil && conv.LastQuestion != "" {
		combined := nlp.Normalize(conv.LastQuestion + " " + question)
		if entry := contextMatch(entries, normalized, combined); entry != nil {
			return knowledgeResult(entry, ConfidenceContextual)
		}
	}

	return nil
}

// knowledgeResult reports the rule confidence unless the author assigned a
// non-default confidence on the entry.
func knowledgeResult(entry *models.Knowledge, confidence int) *Result {
	if entry.Confidence != 0 && entry.Confidence != models.DefaultConfidence {
		confidence = entry.Confidence
	}
	return &Result{Entry: entry, Confidence: confidence}
}

func exactMatch(entries []models.Knowledge, normalized string) *models.Knowledge {
	for i := range entries {
		if nlp.Normalize(entries[i].Question) == normalized {
			return &entries[i]
		}
	}
	return nil
}

func fuzzyMatch(entries []models.Knowledge, normalized string) *models.Knowledge {
	for i := range entries {
		nq := nlp.Normalize(entries[i].Question)
		if nq == "" {
			continue
		}
		if strings.Contains(normalized, nq) || strings.Contains(nq, normalized) {
			return &entries[i]
		}
	}
	return nil
}

// contextMatch requires the entry question to appear both in the current
// question and in the previous-question concatenation.
func contextMatch(entries []models.Knowledge, normalized, combined string) *models.Knowledge {
	for i := range entries {
		nq := nlp.Normalize(entries[i].Question)
		if nq == "" {
			continue
		}
		if strings.Contains(normalized, nq) && strings.Contains(combined, nq) {
			return &entries[i]
		}
	}
	return nil
}
