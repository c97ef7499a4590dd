// Package style holds the formatting policy and its cstyle.toml representation.
//
// A Policy is created once (Default or Load) and passed by value; nothing in
// the formatter mutates it.
package style
