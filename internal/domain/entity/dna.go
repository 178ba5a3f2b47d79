package entity

import "strings"

// DNASequence - фиксированная последовательность для игры в комплементарные пары
const DNASequence = "ACCGTGTA"

// basePairs - правило спаривания оснований: A↔T, G↔C
var basePairs = map[rune]rune{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
}

// ComplementDNA возвращает комплементарную последовательность по правилу спаривания.
// Символы вне алфавита {A,T,G,C} возвращаются как есть (в контенте их нет).
func ComplementDNA(sequence string) string {
	var b strings.Builder
	b.Grow(len(sequence))
	for _, base := range strings.ToUpper(sequence) {
		if pair, ok := basePairs[base]; ok {
			b.WriteRune(pair)
		} else {
			b.WriteRune(base)
		}
	}
	return b.String()
}
