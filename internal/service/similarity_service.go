package service

import (
	"math"
	"strings"
	"unicode"
)

// MaxSimilarityScore is the upper bound of the reported similarity scale.
const MaxSimilarityScore float64 = 100.0

// stopwords are excluded from the comparison vocabulary so that filler words
// do not inflate the score between otherwise unrelated answers.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "and": true,
	"or": true, "but": true, "of": true, "to": true, "in": true, "on": true,
	"at": true, "by": true, "for": true, "with": true, "that": true,
	"this": true, "these": true, "those": true, "it": true, "its": true,
	"as": true, "from": true, "which": true, "can": true, "will": true,
	"would": true, "should": true, "could": true, "do": true, "does": true,
	"not": true, "no": true, "so": true, "if": true, "then": true,
	"they": true, "them": true, "their": true, "there": true, "has": true,
	"have": true, "had": true, "you": true, "your": true, "we": true,
	"our": true, "i": true, "my": true, "he": true, "she": true, "his": true,
	"her": true, "what": true, "when": true, "where": true, "who": true,
	"how": true, "why": true, "also": true, "than": true, "into": true,
	"such": true, "each": true, "other": true, "more": true, "most": true,
	"some": true, "any": true, "all": true, "both": true, "between": true,
}

// SimilarityService measures how close a user's answer is to a model answer
// on a 0-100 scale. The metric is a cosine over term-frequency vectors built
// from a stopword-filtered vocabulary of the two texts.
type SimilarityService interface {
	Score(userAnswer, modelAnswer string) float64
}

type similarityServiceImpl struct{}

func NewSimilarityService() SimilarityService {
	return &similarityServiceImpl{}
}

func (s *similarityServiceImpl) Score(userAnswer, modelAnswer string) float64 {
	userVec := termFrequencies(userAnswer)
	modelVec := termFrequencies(modelAnswer)
	if len(userVec) == 0 || len(modelVec) == 0 {
		return 0
	}

	var dot, userNorm, modelNorm float64
	for term, uf := range userVec {
		dot += uf * modelVec[term]
		userNorm += uf * uf
	}
	for _, mf := range modelVec {
		modelNorm += mf * mf
	}
	if userNorm == 0 || modelNorm == 0 {
		return 0
	}

	similarity := dot / (math.Sqrt(userNorm) * math.Sqrt(modelNorm))
	// Scale to 0-100 and round to two decimals.
	scaled := math.Round(similarity*MaxSimilarityScore*100) / 100
	if scaled > MaxSimilarityScore {
		scaled = MaxSimilarityScore
	}
	if scaled < 0 {
		scaled = 0
	}
	return scaled
}

// tokenize lowercases the text and splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func termFrequencies(text string) map[string]float64 {
	freqs := make(map[string]float64)
	for _, token := range tokenize(text) {
		if stopwords[token] {
			continue
		}
		freqs[token]++
	}
	return freqs
}
