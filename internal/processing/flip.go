package processing

import "strings"

// flipMappings pairs each character with its upside-down lookalike.
var flipMappings = map[rune]rune{
	'a':  'ɐ', // U+0250
	'b':  'q',
	'c':  'ɔ', // U+0254
	'd':  'p',
	'e':  'ǝ', // U+01DD
	'f':  'ɟ', // U+025F
	'g':  'ƃ', // U+0183
	'h':  'ɥ', // U+0265
	'i':  'ᴉ', // U+1D09
	'j':  'ɾ', // U+027E
	'k':  'ʞ', // U+029E
	'l':  'l',
	'm':  'ɯ', // U+026F
	'n':  'u',
	'o':  'o',
	'p':  'd',
	'q':  'b',
	'r':  'ɹ', // U+0279
	's':  's',
	't':  'ʇ', // U+0287
	'u':  'n',
	'v':  'ʌ', // U+028C
	'w':  'ʍ', // U+028D
	'x':  'x',
	'y':  'ʎ', // U+028E
	'z':  'z',
	'A':  '∀', // U+2200
	'B':  'B',
	'C':  'Ɔ', // U+0186
	'D':  'D',
	'E':  'Ǝ', // U+018E
	'F':  'Ⅎ', // U+2132
	'G':  'פ', // U+05E4
	'H':  'H',
	'I':  'I',
	'J':  'ſ', // U+017F
	'K':  'K',
	'L':  '˥', // U+02E5
	'M':  'W',
	'N':  'N',
	'O':  'O',
	'P':  'Ԁ', // U+0500
	'Q':  'Q',
	'R':  'R',
	'S':  'S',
	'T':  '┴', // U+2534
	'U':  '∩', // U+2229
	'V':  'Λ', // U+039B
	'W':  'M',
	'X':  'X',
	'Y':  '⅄', // U+2144
	'Z':  'Z',
	'0':  '0',
	'1':  'Ɩ', // U+0196
	'2':  'ᄅ', // U+1105
	'3':  'Ɛ', // U+0190
	'4':  'ㄣ', // U+3123
	'5':  'ϛ', // U+03DB
	'6':  '9',
	'7':  'ㄥ', // U+3125
	'8':  '8',
	'9':  '6',
	',':  '\'',
	'.':  '˙', // U+02D9
	'?':  '¿', // U+00BF
	'!':  '¡', // U+00A1
	'"':  '„', // U+201E
	'\'': ',',
	'`':  ',',
	'(':  ')',
	')':  '(',
	'[':  ']',
	']':  '[',
	'{':  '}',
	'}':  '{',
	'<':  '>',
	'>':  '<',
	'&':  '⅋', // U+214B
	'_':  '‾', // U+203E
}

// FlipRune returns the upside-down lookalike of character, or character itself when unmapped.
func FlipRune(character rune) rune {
	if flipped, mapped := flipMappings[character]; mapped {
		return flipped
	}
	return character
}

// FlipMappings returns a copy of the flip table.
func FlipMappings() map[rune]rune {
	mappings := make(map[rune]rune, len(flipMappings))
	for original, flipped := range flipMappings {
		mappings[original] = flipped
	}
	return mappings
}

// Flip maps every character of content through the flip table. Character order is kept.
func Flip(content string) string {
	if content == "" {
		return ""
	}
	return strings.Map(FlipRune, content)
}
