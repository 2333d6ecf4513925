// Package datastore persists the two pieces of dotf state that live in the
// root next to the dotfiles: the tag set (<root>/tags) and the directive
// delimiter (<root>/key).
package datastore
