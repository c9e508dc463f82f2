package corpus

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// PrintableASCII keeps words made only of printable ASCII characters, which
// every terminal delivers as single keystrokes.
func PrintableASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch <= ' ' || ch > '~' {
			return false
		}
	}
	return true
}
