// Package beverage demonstrates the abstract factory pattern with a family
// of drink products. A Factory handle is pinned to one region and produces
// sugar and drinks that are only valid together: passing a Sugar made by one
// handle to another handle's drink operation is a programmer error and
// panics.
package beverage
