package mass

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman renders n as a Roman numeral. Zero and negative numbers render as "".
func Roman(n int) string {
	var out []byte
	for _, rv := range romanValues {
		for n >= rv.value {
			out = append(out, rv.symbol...)
			n -= rv.value
		}
	}
	return string(out)
}
