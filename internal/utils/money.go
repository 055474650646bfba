package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatRupees renders a whole-rupee amount with Indian digit grouping, e.g. ₹1,25,000.
func FormatRupees(amount int64) string {
	return "₹" + GroupIndian(amount)
}

// FormatRupeesPlain is FormatRupees for the PDF core fonts, which lack the rupee sign.
func FormatRupeesPlain(amount int64) string {
	return "Rs. " + GroupIndian(amount)
}

// FormatAmount renders a fractional amount with two decimals and Indian grouping.
func FormatAmount(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	paise := int64(math.Round(amount * 100))
	return fmt.Sprintf("%s%s.%02d", sign, GroupIndian(paise/100), paise%100)
}

// GroupIndian groups digits as lakh/crore: the last three, then pairs.
func GroupIndian(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return sign + str
	}
	head, tail := str[:len(str)-3], str[len(str)-3:]
	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return sign + out.String() + "," + tail
}
