// Package models defines the records exchanged with the ESS backend and
// kept in the local store. Backend fields are loosely typed, so most
// scalars are FlexString.
package models
