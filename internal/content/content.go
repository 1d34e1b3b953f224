// Package content 提供只读的词语/问题数据源
// 数据在编译期嵌入，进程生命周期内不可变
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
)

//go:embed words.json
var wordsData []byte

//go:embed questions.json
var questionsData []byte

// 游戏模式
const (
	ModeImposter = "imposter" // 词语模式：船员看词，卧底看 "???"
	ModeGuessing = "guessing" // 猜谜模式：两种角色拿到不同的问题
)

// CategoryRandom 表示随机选择分类
const CategoryRandom = "random"

// 兜底内容，数据异常时保证回合仍能开始
var (
	fallbackWord     = "banana"
	fallbackQuestion = QuestionPair{
		Crewmate: "What is your favorite color?",
		Imposter: "What is your least favorite color?",
	}
)

// QuestionPair 按角色拆分的问题对
type QuestionPair struct {
	Crewmate string `json:"crewmate"`
	Imposter string `json:"imposter"`
}

// Item 一个回合的秘密内容
// 词语模式只填 Word，猜谜模式只填 Question
type Item struct {
	Mode     string
	Word     string
	Question QuestionPair
}

// Provider 只读内容源
type Provider struct {
	words     map[string][]string
	questions map[string][]QuestionPair
}

type questionsFile struct {
	Categories map[string][]QuestionPair `json:"categories"`
}

// NewProvider 解析嵌入数据并创建 Provider
func NewProvider() (*Provider, error) {
	p := &Provider{}

	if err := json.Unmarshal(wordsData, &p.words); err != nil {
		return nil, fmt.Errorf("parse words.json: %w", err)
	}

	var qf questionsFile
	if err := json.Unmarshal(questionsData, &qf); err != nil {
		return nil, fmt.Errorf("parse questions.json: %w", err)
	}
	p.questions = qf.Categories

	return p, nil
}

// Categories 返回某模式下的有效分类，按字典序
func (p *Provider) Categories(mode string) []string {
	var src map[string]int
	switch mode {
	case ModeGuessing:
		src = make(map[string]int, len(p.questions))
		for name, entries := range p.questions {
			src[name] = len(entries)
		}
	default:
		src = make(map[string]int, len(p.words))
		for name, entries := range p.words {
			src[name] = len(entries)
		}
	}

	categories := make([]string, 0, len(src))
	for name, n := range src {
		if name == CategoryRandom || n == 0 {
			continue
		}
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return categories
}

// Pick 按分类和模式随机选取一条内容
// 分类为 "random" 或无效时在有效分类中均匀随机，任何数据问题都以兜底内容收场，
// 绝不向调用方抛错
func (p *Provider) Pick(category, mode string) Item {
	if mode == ModeGuessing {
		return p.pickQuestion(category)
	}
	return p.pickWord(category)
}

func (p *Provider) pickWord(category string) Item {
	entries, ok := p.words[category]
	if category == CategoryRandom || !ok || len(entries) == 0 {
		categories := p.Categories(ModeImposter)
		if len(categories) == 0 {
			return Item{Mode: ModeImposter, Word: fallbackWord}
		}
		entries = p.words[categories[rand.Intn(len(categories))]]
	}

	if len(entries) == 0 {
		return Item{Mode: ModeImposter, Word: fallbackWord}
	}
	return Item{Mode: ModeImposter, Word: entries[rand.Intn(len(entries))]}
}

func (p *Provider) pickQuestion(category string) Item {
	entries, ok := p.questions[category]
	if category == CategoryRandom || !ok || len(entries) == 0 {
		// 分类缺失或为空时退回 basic 分类
		if basic, ok := p.questions["basic"]; ok && len(basic) > 0 && category != CategoryRandom {
			entries = basic
		} else {
			categories := p.Categories(ModeGuessing)
			if len(categories) == 0 {
				return Item{Mode: ModeGuessing, Question: fallbackQuestion}
			}
			entries = p.questions[categories[rand.Intn(len(categories))]]
		}
	}

	if len(entries) == 0 {
		return Item{Mode: ModeGuessing, Question: fallbackQuestion}
	}
	return Item{Mode: ModeGuessing, Question: entries[rand.Intn(len(entries))]}
}
