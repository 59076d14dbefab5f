// Package source provides standalone implementations of the two collaborators
// the bridge reads from: the finding list and the scope oracle.
//
// When the bridge is embedded next to a scanning engine those collaborators
// come from the engine itself. Run on its own, the bridge reads findings
// from a JSON or YAML file that is re-read whenever it changes on disk, and
// decides scope from a list of URL prefixes.
package source
