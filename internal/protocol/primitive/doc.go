// Package primitive converts the value kinds JSON has no native form for:
// timestamps, fixed-precision decimals and closed enumerations, plus the
// integer reading and field constraint checks shared by both codec
// directions. Functions here are pure and report failures without a field
// path; callers stamp the path.
package primitive
