package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniversalPOS(t *testing.T) {
	assert.Equal(t, posNoun, universalPOS("NN"))
	assert.Equal(t, posNoun, universalPOS("NNS"))
	assert.Equal(t, posProperNoun, universalPOS("NNP"))
	assert.Equal(t, posProperNoun, universalPOS("NNPS"))
	assert.Equal(t, "VB", universalPOS("VB"))
}

func TestProseTagger_TokenizesText(t *testing.T) {
	tagger := NewProseTagger()

	tokens, err := tagger.Tag("machine learning engineer")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	// Compound children always point at a following noun head.
	for i, tok := range tokens {
		if tok.Dep == depCompound {
			assert.Equal(t, i+1, tok.Head)
			assert.True(t, isNounPOS(tokens[tok.Head].POS))
		} else {
			assert.Equal(t, -1, tok.Head)
		}
	}
}

func TestProseTagger_EmptyText(t *testing.T) {
	tagger := NewProseTagger()

	tokens, err := tagger.Tag("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
