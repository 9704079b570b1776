// Package container demonstrates the factory method pattern for assembling
// a storage container. The creation algorithm is fixed and implemented once
// by Build; profile variants supply only the data that varies: which schema
// sources to merge and which stores to open.
//
// Schema resolution and store opening are delegated to collaborators behind
// the SchemaResolver and StoreEngine interfaces; see internal/schema and
// internal/store for the shipped implementations.
package container
