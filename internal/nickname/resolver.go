package nickname

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// offsetChars is how many characters after the first one feed the offset.
const offsetChars = 20

// Resolve deterministically maps realName to a nickname from t.
//
// Every character is lowercased on its own (one character may lowercase to
// several). The first lowercase character selects the candidate list and the
// code points of up to offsetChars following characters are summed to pick
// an index. ok is false when realName is empty or its first character has no
// entry in t.
func Resolve(t *Table, realName string) (nick string, ok bool) {
	normalized := normalize(realName, offsetChars+1)
	if len(normalized) == 0 {
		return "", false
	}

	candidates, found := t.entries[normalized[0]]
	if !found {
		return "", false
	}

	offset := 0
	for _, r := range normalized[1:] {
		offset += int(r)
	}
	return candidates[offset%len(candidates)], true
}

// normalize lowercases realName character by character and returns at most
// limit resulting characters.
func normalize(realName string, limit int) []rune {
	// Casers carry state and are not safe to share between goroutines.
	lower := cases.Lower(language.Und)
	out := make([]rune, 0, limit)
	for _, r := range realName {
		for _, lr := range lower.String(string(r)) {
			if len(out) == limit {
				return out
			}
			out = append(out, lr)
		}
	}
	return out
}
