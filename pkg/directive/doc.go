// Package directive recognizes and parses the annotations embedded in source
// dotfiles.
//
// A directive is written between two occurrences of the delimiter ("key"):
//
//	# ~~~ only work laptop ~~~
//	# ~~~ location ~/.config/git/config work ~~~
//
// The body between the delimiters is split with shell-word rules, so a tag
// containing spaces can be quoted: ~~~ include "home office" ~~~.
package directive
