package services

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

const (
	posNoun       = "NOUN"
	posProperNoun = "PROPN"

	depCompound = "compound"
)

type TaggedToken struct {
	Text string
	POS  string
	Dep  string
	Head int // index of the head token, -1 when none
}

// Tagger abstracts the linguistic model behind skill extraction so the
// concrete tagger is swappable without touching extraction logic.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}

type proseTagger struct{}

func NewProseTagger() Tagger {
	return &proseTagger{}
}

// Tag runs prose POS tagging over the text. Prose has no dependency parser,
// so a noun token immediately followed by another noun is marked as a
// compound child of that following head.
func (t *proseTagger) Tag(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]TaggedToken, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, TaggedToken{
			Text: tok.Text,
			POS:  universalPOS(tok.Tag),
			Head: -1,
		})
	}

	for i := 0; i < len(tokens)-1; i++ {
		if isNounPOS(tokens[i].POS) && isNounPOS(tokens[i+1].POS) {
			tokens[i].Dep = depCompound
			tokens[i].Head = i + 1
		}
	}

	return tokens, nil
}

// universalPOS collapses Penn Treebank tags to the coarse classes the
// extractor cares about.
func universalPOS(pennTag string) string {
	switch pennTag {
	case "NN", "NNS":
		return posNoun
	case "NNP", "NNPS":
		return posProperNoun
	default:
		return pennTag
	}
}

func isNounPOS(pos string) bool {
	return pos == posNoun || pos == posProperNoun
}
