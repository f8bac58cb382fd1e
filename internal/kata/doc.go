// Package kata implements the drill operations: text casing, rating filter,
// sequence concatenation, value processing, most-expensive selection,
// weekday classification and the delayed square.
//
// Every operation is independent and stateless. Only SquareAsync is
// asynchronous; it hands back a Future that settles exactly once.
package kata
