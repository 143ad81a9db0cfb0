// Package metadata stores named blobs in the local sqlite database. The
// session store keeps its serialized credential here under a fixed key.
package metadata
