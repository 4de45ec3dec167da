// Package store persists rule lists.
//
// Files are read and written through an afero filesystem so callers can run
// against the OS or an in-memory tree. The codec follows the file
// extension:
//
//	.json          [{"rule": "*arrow", "active": true, "exclude": false}]
//	.toml          [[rules]] tables
//	.yaml / .yml   a sequence of rule mappings
//
// Unknown extensions use JSON. Rule order is preserved in every format. A
// file that does not exist loads as an empty list.
package store
