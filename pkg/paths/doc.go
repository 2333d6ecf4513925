// Package paths provides centralized path handling for dotf.
//
// A dotf root has a fixed layout:
//
//	<root>/dotfiles/   source dotfiles, hidden entries ignored
//	<root>/.compiled/  compiled output, regenerated by every compile
//	<root>/tags        one tag per line
//	<root>/key         the directive delimiter
//
// User configuration lives outside the root, in $XDG_CONFIG_HOME/dotf.
//
// # Usage
//
//	p, err := paths.New("~/.dotf")
//	if err != nil {
//	    return err
//	}
//	p.DotfilesDir()           // /home/user/.dotf/dotfiles
//	p.CompiledPath("bashrc")  // /home/user/.dotf/.compiled/bashrc
package paths
