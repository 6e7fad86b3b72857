// Package delay provides a fixed-capacity circular delay line.
package delay
