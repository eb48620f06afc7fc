package evaluator

import "strconv"

func itoa(n int) string { return strconv.Itoa(n) }

func arityDesc(min, max int) string {
	switch {
	case max < 0 && min == 0:
		return "any number of"
	case max < 0:
		return "at least " + itoa(min)
	case min == max:
		return itoa(min)
	default:
		return itoa(min) + " to " + itoa(max)
	}
}
