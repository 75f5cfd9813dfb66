package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sossoukouame/kousossou-bot-be/internal/apperrors"
)

func TestRecordDedupIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.unanswered.Record("Pourquoi le ciel est bleu")
	require.NoError(t, err)

	second, err := env.unanswered.Record("pourquoi le ciel est BLEU")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := env.unansweredRepo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestResolveCreatesKnowledgeAndRemovesRecord(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCategory(t, "Geographie")

	record, err := env.unanswered.Record("Quelle est la capitale du Togo")
	require.NoError(t, err)

	entry, err := env.unanswered.Resolve(record.ID, "Lomé est la capitale du Togo.", category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quelle est la capitale du Togo", entry.Question)
	assert.Equal(t, "Lomé est la capitale du Togo.", entry.Answer)
	assert.Equal(t, category.ID, entry.CategoryID)

	questions, err := env.unanswered.List()
	require.NoError(t, err)
	assert.Empty(t, questions)

	count, err := env.knowledgeRepo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestResolveUnknownIDFails(t *testing.T) {
	env := newTestEnv(t)
	category := env.mustCategory(t, "General")

	_, err := env.unanswered.Resolve(12345, "une réponse", category.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.categories.Create("  ")
	assert.True(t, apperrors.IsValidation(err))

	created, err := env.categories.Create("Sport")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = env.categories.Create("Sport")
	assert.True(t, apperrors.IsValidation(err))
}
