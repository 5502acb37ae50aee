package domain

import "unicode/utf8"

// Size limits shared by the text store and the analysis gateway. A saved
// text is sent whole as analysis context, so both use MaxTextRunes.
const (
	MaxTextRunes = 20000
	MaxTexts     = 1000

	// MaxCollectionBytes bounds a request body carrying the whole collection
	// at MaxTexts texts of MaxTextRunes runes each, plus JSON framing.
	MaxCollectionBytes = MaxTexts*(MaxTextRunes*utf8.UTFMax+16) + 1<<10
)
