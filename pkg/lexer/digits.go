package lexer

// bengaliDigitBase is the codepoint of ০ (U+09E6), the Bengali zero digit.
// Bengali digits run ০-৯ at U+09E6..U+09EF, in the same order as ASCII
// 0-9, so digit value is a simple offset from either base.
const bengaliDigitBase = rune(0x09E6)

// IsDigit reports whether r is an ASCII or Bengali decimal digit.
func IsDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= bengaliDigitBase && r <= bengaliDigitBase+9)
}

// DigitValue returns the decimal value of an ASCII or Bengali digit rune.
// The caller must have already verified IsDigit(r).
func DigitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	return int(r - bengaliDigitBase)
}

// NormalizeDigits rewrites every Bengali digit in s to its ASCII
// equivalent, leaving everything else (including '.', '-') untouched.
// Both the lexer's numeric-literal scanning and the _সংখ্যা built-in route
// through this function so the digit mapping lives in exactly one place.
func NormalizeDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= bengaliDigitBase && r <= bengaliDigitBase+9 {
			out = append(out, rune('0'+DigitValue(r)))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// ToBengaliDigits rewrites every ASCII digit in s to its Bengali
// equivalent. Used by the evaluator's canonical number formatting.
func ToBengaliDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, bengaliDigitBase+rune(r-'0'))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
