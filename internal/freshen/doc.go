// Package freshen reconciles a repository against its root branch: it stashes
// uncommitted work, prunes and fetches the remote, fast-forwards the root
// branch, reports or deletes merged branches, and restores the starting state.
package freshen
