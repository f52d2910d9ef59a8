// Package slug derives machine-readable value codes from human labels.
package slug

import (
	"regexp"
	"strings"
)

// foldTable maps every Vietnamese diacritic vowel (and đ) to its base
// Latin letter. Applied after lowercasing, so only lowercase forms appear.
var foldTable = map[rune]rune{
	'à': 'a', 'á': 'a', 'ạ': 'a', 'ả': 'a', 'ã': 'a',
	'â': 'a', 'ầ': 'a', 'ấ': 'a', 'ậ': 'a', 'ẩ': 'a', 'ẫ': 'a',
	'ă': 'a', 'ằ': 'a', 'ắ': 'a', 'ặ': 'a', 'ẳ': 'a', 'ẵ': 'a',
	'è': 'e', 'é': 'e', 'ẹ': 'e', 'ẻ': 'e', 'ẽ': 'e',
	'ê': 'e', 'ề': 'e', 'ế': 'e', 'ệ': 'e', 'ể': 'e', 'ễ': 'e',
	'ì': 'i', 'í': 'i', 'ị': 'i', 'ỉ': 'i', 'ĩ': 'i',
	'ò': 'o', 'ó': 'o', 'ọ': 'o', 'ỏ': 'o', 'õ': 'o',
	'ô': 'o', 'ồ': 'o', 'ố': 'o', 'ộ': 'o', 'ổ': 'o', 'ỗ': 'o',
	'ơ': 'o', 'ờ': 'o', 'ớ': 'o', 'ợ': 'o', 'ở': 'o', 'ỡ': 'o',
	'ù': 'u', 'ú': 'u', 'ụ': 'u', 'ủ': 'u', 'ũ': 'u',
	'ư': 'u', 'ừ': 'u', 'ứ': 'u', 'ự': 'u', 'ử': 'u', 'ữ': 'u',
	'ỳ': 'y', 'ý': 'y', 'ỵ': 'y', 'ỷ': 'y', 'ỹ': 'y',
	'đ': 'd',
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Make converts a display label into its normalized value code: lowercase,
// Vietnamese diacritics folded to base letters, everything else outside
// [a-z0-9] replaced with an underscore.
//
// Leading and trailing underscores are kept on purpose. This is the code
// generator for variant value codes, not the URL slug helper — the two must
// not be conflated, because value codes are compared byte-for-byte against
// previously persisted rows.
func Make(label string) string {
	lower := strings.ToLower(label)
	folded := strings.Map(func(r rune) rune {
		if base, ok := foldTable[r]; ok {
			return base
		}
		return r
	}, lower)
	return nonAlnum.ReplaceAllString(folded, "_")
}
