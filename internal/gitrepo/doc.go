// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for inspecting branches, remotes, and status,
// consumed by the freshen workflow whenever it needs structured Git operations.
package gitrepo
