package ai

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// tokenizerEncoding is the encoding of the OpenAI embedding models.
const tokenizerEncoding = "cl100k_base"

var (
	tokenizer     *tiktoken.Tiktoken
	tokenizerOnce sync.Once
)

// EstimateTokenCount estimates the token count for a single text string.
// This is an approximation: providers other than OpenAI tokenize differently.
func EstimateTokenCount(text string) int {
	tokenizerOnce.Do(func() {
		tkm, err := tiktoken.GetEncoding(tokenizerEncoding)
		if err == nil {
			tokenizer = tkm
		}
	})

	if tokenizer == nil {
		// ~4 chars per token
		return len(text)/4 + 1
	}

	return len(tokenizer.Encode(text, nil, nil))
}
