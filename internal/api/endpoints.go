package api

import "strconv"

// LettersPath is the collection path for letters.
const LettersPath = "letters"

// LetterPath returns the path of a single letter.
func LetterPath(id int) string {
	return LettersPath + "/" + strconv.Itoa(id)
}

// PurchasePath returns the path that purchases delivery of a letter.
func PurchasePath(id int) string {
	return LetterPath(id) + "/purchase"
}
