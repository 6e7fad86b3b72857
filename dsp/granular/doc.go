// Package granular provides a dynamic pool of short-lived generator voices.
//
// Voices are added with a lifetime in seconds and mixed by summation on every
// tick. A voice's remaining count is decremented before it produces its
// sample, and voices whose count reaches zero are removed after that
// sample, so a voice added for n samples contributes n samples and a voice
// with a zero lifetime contributes one.
package granular
