package planet

import "fmt"

// nameSuffixes is the pool of planet name suffixes
var nameSuffixes = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"Prime", "Alpha", "Beta", "Gamma", "Major", "Minor", "Core", "Outer",
}

// NameFor returns the display name for the nth placed planet. Names cycle
// through the suffix pool; identity lives in the planet ID, not the name.
func NameFor(n int) string {
	return fmt.Sprintf("Planet %s", nameSuffixes[n%len(nameSuffixes)])
}
