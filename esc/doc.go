// Package esc implements the backslash escape grammar shared by
// texel strings, font character lists and metrics override tables.
//
// Decoding is a pure function of the current byte index, so any
// position returned by [Decode] can be used to restart the
// enumeration. See [Iterator] for a convenience wrapper.
//
// Supported escapes:
//   \0 \a \b \e \f \n \r \t \v \\ \' \"
//   \uHHHH and \xHHHH (up to four hexadecimal digits)
// Unrecognized escapes decode to a literal backslash, and the
// character following it is decoded normally on the next call.
package esc
