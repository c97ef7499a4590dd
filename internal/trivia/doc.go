// Package trivia moves comments and preprocessor directives out of C source
// before parsing and puts them back after formatting.
//
// Extract is strictly line oriented: the clean text it returns has exactly as
// many lines as the input, so every record keeps a valid line anchor.
package trivia
