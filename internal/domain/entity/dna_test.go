package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplementDNA_FixedSequence(t *testing.T) {
	// Act: комплемент фиксированной игровой последовательности
	result := ComplementDNA(DNASequence)

	// Assert: A↔T, G↔C
	assert.Equal(t, "TGGCACAT", result, "Комплемент ACCGTGTA должен быть TGGCACAT")
}

func TestComplementDNA_NormalizesCase(t *testing.T) {
	// Act & Assert: регистр входа не влияет на результат
	assert.Equal(t, "TGGCACAT", ComplementDNA("accgtgta"))
	assert.Equal(t, "TGGCACAT", ComplementDNA("AcCgTgTa"))
}

func TestComplementDNA_IsInvolution(t *testing.T) {
	// Assert: двойной комплемент возвращает исходную последовательность
	assert.Equal(t, DNASequence, ComplementDNA(ComplementDNA(DNASequence)))
}

func TestPCRStageByName(t *testing.T) {
	// Assert: каталог стадий содержит ровно известные стадии с их температурами
	for _, tc := range []struct {
		name string
		temp int
	}{
		{"Denaturation", 95},
		{"Annealing", 55},
		{"Extension", 72},
	} {
		stage, ok := PCRStageByName(tc.name)
		assert.True(t, ok, "Стадия %s должна существовать", tc.name)
		assert.Equal(t, tc.temp, stage.Temp, "Температура стадии %s", tc.name)
	}

	_, ok := PCRStageByName("Elongation")
	assert.False(t, ok, "Неизвестная стадия не должна находиться")
}
