package documents

import (
	"math"
	"strings"
)

var (
	onesWords = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tensWords = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
)

func twoDigits(n int) string {
	if n < 20 {
		return onesWords[n]
	}

	if n%10 == 0 {
		return tensWords[n/10]
	}

	return tensWords[n/10] + " " + onesWords[n%10]
}

func threeDigits(n int) string {
	if n < 100 {
		return twoDigits(n)
	}

	if n%100 == 0 {
		return onesWords[n/100] + " Hundred"
	}

	return onesWords[n/100] + " Hundred " + twoDigits(n%100)
}

// amountInWords spells out an amount in rupees using the Indian numbering
// system, e.g. 125000.50 becomes
// "One Lakh Twenty Five Thousand Rupees and Fifty Paise Only".
func amountInWords(amount float64) string {
	rupees := int(math.Floor(amount))
	paise := int(math.Round((amount - float64(rupees)) * 100))

	if paise == 100 {
		rupees++
		paise = 0
	}

	var parts []string

	if crore := rupees / 10000000; crore > 0 {
		parts = append(parts, twoDigits(crore)+" Crore")
	}

	if lakh := rupees % 10000000 / 100000; lakh > 0 {
		parts = append(parts, twoDigits(lakh)+" Lakh")
	}

	if thousand := rupees % 100000 / 1000; thousand > 0 {
		parts = append(parts, twoDigits(thousand)+" Thousand")
	}

	if rest := rupees % 1000; rest > 0 {
		parts = append(parts, threeDigits(rest))
	}

	if len(parts) == 0 {
		parts = append(parts, "Zero")
	}

	words := strings.Join(parts, " ") + " Rupees"

	if paise > 0 {
		words += " and " + twoDigits(paise) + " Paise"
	}

	return words + " Only"
}
