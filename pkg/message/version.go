package message

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// ProtocolVersion is the version of the wire schema defined by this
// package. The remote transport exchanges it during the handshake so
// that independently deployed control and presentation processes fail
// fast on schema drift instead of corrupting each other's state.
//
// Bump the major version for any change to message tags or field names.
const ProtocolVersion = "v1.0.0"

// CheckCompatible returns an error unless theirs is a valid semver
// string with the same major version as ours.
func CheckCompatible(ours, theirs string) error {
	if !semver.IsValid(ours) {
		return fmt.Errorf("invalid local protocol version %q", ours)
	}
	if !semver.IsValid(theirs) {
		return fmt.Errorf("invalid peer protocol version %q", theirs)
	}
	if semver.Major(ours) != semver.Major(theirs) {
		return fmt.Errorf("incompatible protocol versions: local %s, peer %s", ours, theirs)
	}
	return nil
}
