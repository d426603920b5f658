package finance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount разбирает денежную строку вида "16000" или "16000.50".
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: amount %q", ErrInvalidInput, s)
	}
	return v, nil
}
