package esc

// Iterator enumerates the decoded characters of a string. The
// zero value iterates from the start of the text in escaped mode.
//
// Iterators hold no state other than the current index, so they
// can be copied to save and restore positions.
type Iterator struct {
	text  string
	index int
	raw   bool
}

// Creates a new iterator for the given text.
func NewIterator(text string, raw bool) Iterator {
	return Iterator{ text: text, raw: raw }
}

// Returns the byte index of the next character to be decoded.
func (self *Iterator) Index() int { return self.index }

// Sets the byte index of the next character to be decoded.
func (self *Iterator) Seek(index int) { self.index = index }

// Resets the iterator to the start of the given text.
func (self *Iterator) Reset(text string, raw bool) {
	self.text  = text
	self.index = 0
	self.raw   = raw
}

// Returns whether there are characters left to decode.
func (self *Iterator) More() bool { return self.index < len(self.text) }

// Decodes the next character and advances the iterator. The returned
// index is the byte index where the character starts. At the end of
// the text, char is -1.
func (self *Iterator) Next() (index int, char rune, escaped bool) {
	index = self.index
	self.index, char, escaped = Decode(self.text, index, self.raw)
	return index, char, escaped
}

// Like [Iterator.Next](), but without advancing the iterator.
func (self *Iterator) Peek() (char rune, escaped bool) {
	_, char, escaped = Decode(self.text, self.index, self.raw)
	return char, escaped
}
