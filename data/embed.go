// Package data embeds the starter frequency lists.
package data

import _ "embed"

//go:embed tr_freq.txt
var TurkishFreq []byte

//go:embed en_freq.txt
var EnglishFreq []byte
