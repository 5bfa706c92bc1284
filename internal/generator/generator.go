// Package generator builds word queues for typing rounds.
package generator

import (
	"math/rand"
	"time"
)

// Generator draws random word samples.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator backed by src. Tests pass a fixed seed.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Sample selects count distinct positions of words in random order. When
// words is shorter than count the whole list comes back shuffled. words is
// never modified.
func (g *Generator) Sample(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return []string{}
	}
	if count > len(words) {
		count = len(words)
	}
	idx := make([]int, len(words))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: the first count slots end up a uniform sample.
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		j := i + g.rnd.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		result = append(result, words[idx[i]])
	}
	return result
}
