package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotEmpty(t, p.Categories(ModeImposter))
	assert.NotEmpty(t, p.Categories(ModeGuessing))
}

func TestPick_KnownWordCategory(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)

	item := p.Pick("animals", ModeImposter)
	assert.Equal(t, ModeImposter, item.Mode)
	assert.Contains(t, p.words["animals"], item.Word)
	assert.Empty(t, item.Question.Crewmate)
}

func TestPick_RandomWordCategory(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)

	for range 50 {
		item := p.Pick(CategoryRandom, ModeImposter)
		assert.NotEmpty(t, item.Word)
	}
}

func TestPick_UnknownCategoryNeverFails(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)

	item := p.Pick("does-not-exist", ModeImposter)
	assert.NotEmpty(t, item.Word)

	item = p.Pick("does-not-exist", ModeGuessing)
	assert.NotEmpty(t, item.Question.Crewmate)
	assert.NotEmpty(t, item.Question.Imposter)
}

func TestPick_UnknownGuessingCategoryFallsBackToBasic(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)

	// 未知分类退回 basic 分类
	item := p.Pick("nope", ModeGuessing)
	assert.Contains(t, p.questions["basic"], item.Question)
}

func TestPick_GuessingPairHalvesDiffer(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)

	for _, category := range p.Categories(ModeGuessing) {
		for range 20 {
			item := p.Pick(category, ModeGuessing)
			assert.NotEqual(t, item.Question.Crewmate, item.Question.Imposter)
		}
	}
}

func TestCategories_Sorted(t *testing.T) {
	t.Parallel()

	p, err := NewProvider()
	require.NoError(t, err)

	categories := p.Categories(ModeImposter)
	assert.IsNonDecreasing(t, categories)
}

func TestPick_EmptyProviderUsesFallback(t *testing.T) {
	t.Parallel()

	p := &Provider{
		words:     map[string][]string{},
		questions: map[string][]QuestionPair{},
	}

	item := p.Pick(CategoryRandom, ModeImposter)
	assert.Equal(t, fallbackWord, item.Word)

	item = p.Pick(CategoryRandom, ModeGuessing)
	assert.Equal(t, fallbackQuestion, item.Question)
}
