// Package channel generates channel keys and moves them between members.
//
// A channel key is one symmetric key shared by all current members. Its
// distribution descriptor is never self-protecting: Export always seals it
// inside a direct envelope under an established shared secret, and Import
// only accepts it that way.
package channel
