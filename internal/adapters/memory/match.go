package memory

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/muzikology/Live2Share/internal/core/finance"
)

// fold приводит строку к форме для регистронезависимого сравнения.
// Caser не потокобезопасен, поэтому создается на каждый вызов.
func fold(s string) string {
	return cases.Fold().String(s)
}

func containsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

func equalFold(a, b string) bool {
	return fold(a) == fold(b)
}

// anyContainsFold - хотя бы один элемент содержит подстроку.
func anyContainsFold(values []string, substr string) bool {
	for _, v := range values {
		if containsFold(v, substr) {
			return true
		}
	}
	return false
}

// inRange проверяет включительные границы. Неразбираемая цена в диапазон не попадает.
func inRange(value string, lo, hi *float64) bool {
	if lo == nil && hi == nil {
		return true
	}
	v, err := finance.ParseAmount(value)
	if err != nil {
		return false
	}
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

// newestFirst сортирует по createdAt по убыванию, равные сохраняют порядок вставки.
func newestFirst[T any](rows []T, createdAt func(T) time.Time) {
	sort.SliceStable(rows, func(i, j int) bool {
		return createdAt(rows[i]).After(createdAt(rows[j]))
	})
}
