// Package setup defines the Configuration Record: one complete car setup
// made of a driver profile and five subsystem groups.
//
// Enum-valued fields hold their display labels ("Soft", "Yes", "V6"), which
// is also their on-disk representation. The legal labels for every field live
// in Catalog; the interactive configurators offer exactly those choices and
// Validate checks a record against them.
//
// This package imports nothing internal.
package setup
