package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaptianCoder/Imposter-good/internal/content"
)

func TestImposterMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode       string
		rosterSize int
		want       int
	}{
		{content.ModeGuessing, 2, 1},
		{content.ModeGuessing, 6, 1},
		{content.ModeImposter, 2, 1},
		{content.ModeImposter, 3, 2},
		{content.ModeImposter, 5, 4},
		{content.ModeImposter, 6, 5},
		{content.ModeImposter, 10, 5}, // 硬上限 5
	}

	for _, tt := range tests {
		got := ImposterMax(tt.mode, tt.rosterSize, 5)
		assert.Equal(t, tt.want, got, "mode=%s size=%d", tt.mode, tt.rosterSize)
	}
}

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range n {
		ids[i] = fmt.Sprintf("p%d", i)
	}
	return ids
}

func TestSelectImposters_SizeAndSubset(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 4, 6} {
		ids := makeIDs(n)
		for count := 1; count < n; count++ {
			picked, err := SelectImposters(ids, count)
			require.NoError(t, err)
			assert.Len(t, picked, count)

			valid := make(map[string]struct{}, n)
			for _, id := range ids {
				valid[id] = struct{}{}
			}
			for id := range picked {
				assert.Contains(t, valid, id)
			}
		}
	}
}

func TestSelectImposters_InvalidInput(t *testing.T) {
	t.Parallel()

	ids := makeIDs(4)

	_, err := SelectImposters(ids, 0)
	assert.Error(t, err)

	_, err = SelectImposters(ids, 4) // 必须留至少一个船员
	assert.Error(t, err)

	_, err = SelectImposters(ids, 5)
	assert.Error(t, err)

	_, err = SelectImposters([]string{"solo"}, 1)
	assert.Error(t, err)
}

func TestSelectImposters_Uniform(t *testing.T) {
	t.Parallel()

	const (
		trials = 10000
		n      = 6
		count  = 2
	)

	ids := makeIDs(n)
	freq := make(map[string]int, n)

	for range trials {
		picked, err := SelectImposters(ids, count)
		require.NoError(t, err)
		for id := range picked {
			freq[id]++
		}
	}

	// 每个玩家被选中的期望次数 trials*count/n，二项分布标准差约 47，
	// 这里取 ±350 作为宽松容差
	expected := float64(trials*count) / float64(n)
	for _, id := range ids {
		assert.InDelta(t, expected, float64(freq[id]), 350, "player %s selection frequency", id)
	}
}

func TestVisibleContent_WordMode(t *testing.T) {
	t.Parallel()

	item := content.Item{Mode: content.ModeImposter, Word: "penguin"}

	assert.Equal(t, "penguin", VisibleContent(RoleCrewmate, item))
	// 卧底绝不能拿到真词
	assert.Equal(t, HiddenWord, VisibleContent(RoleImposter, item))
	assert.NotEqual(t, item.Word, VisibleContent(RoleImposter, item))
}

func TestVisibleContent_GuessingMode(t *testing.T) {
	t.Parallel()

	item := content.Item{
		Mode: content.ModeGuessing,
		Question: content.QuestionPair{
			Crewmate: "crew question",
			Imposter: "imposter question",
		},
	}

	crew := VisibleContent(RoleCrewmate, item)
	imp := VisibleContent(RoleImposter, item)

	assert.Equal(t, "crew question", crew)
	assert.Equal(t, "imposter question", imp)
	// 两半问题不能串门
	assert.NotEqual(t, crew, item.Question.Imposter)
	assert.NotEqual(t, imp, item.Question.Crewmate)
}
