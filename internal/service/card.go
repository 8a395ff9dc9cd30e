package service

// cardSuffixLen is the number of trailing card characters kept on file.
const cardSuffixLen = 4

// Last4 returns the trailing four characters of a submitted card string.
// Shorter inputs are returned whole. No format or Luhn check is applied.
func Last4(card string) string {
	runes := []rune(card)
	if len(runes) <= cardSuffixLen {
		return card
	}
	return string(runes[len(runes)-cardSuffixLen:])
}
