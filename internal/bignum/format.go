package bignum

import "strings"

// Suffix ladder for abbreviated display, one entry per 3 decimal digits.
// The empty first entry covers values below 1000. This is an ordered table,
// not inferred; extend it here when the economy outgrows it.
var abbrevSuffixes = []string{
	"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No", "Dc",
	"UDc", "DDc", "TDc", "QaDc", "QiDc", "SxDc", "SpDc", "OcDc", "NoDc", "Vg",
}

// Abbreviated returns the human-readable suffix form of b: up to three
// leading digits, one optional decimal digit, trailing ".0" suppressed,
// sign preserved. Values whose magnitude exceeds the ladder reuse the last
// suffix with a longer integer part rather than failing.
//
//	1500000 -> "1.5M"
//	999     -> "999"
//	-2300   -> "-2.3K"
func (b BigNumber) Abbreviated() string {
	digits := b.val().String()

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	if len(digits) < 4 {
		return sign + digits
	}

	bucket := (len(digits) - 1) / 3
	if bucket >= len(abbrevSuffixes) {
		bucket = len(abbrevSuffixes) - 1
	}

	lead := len(digits) - bucket*3
	whole := digits[:lead]
	frac := digits[lead]

	if frac == '0' {
		return sign + whole + abbrevSuffixes[bucket]
	}
	return sign + whole + "." + string(frac) + abbrevSuffixes[bucket]
}
