package networks

import (
	"errors"
	"fmt"
)

// ErrUnknownVersion is the sentinel wrapped by UnknownVersionError; match
// against it with errors.Is.
var ErrUnknownVersion = errors.New("networks: version bytes not found in extended-prv or extended-pub table")

// ErrAmbiguousVersion is the sentinel wrapped by AmbiguousVersionError;
// match against it with errors.Is.
var ErrAmbiguousVersion = errors.New("networks: version bytes present in both extended-prv and extended-pub tables")

// UnknownVersionError reports a version prefix absent from both sub-tables
// of a network's extended-key table.
type UnknownVersionError struct {
	Version uint32
	Network string
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("networks: unknown version %08X for network %s", e.Version, e.Network)
}

func (e *UnknownVersionError) Unwrap() error { return ErrUnknownVersion }

// AmbiguousVersionError reports a version prefix present in both the
// extended-prv and extended-pub sub-tables, such as the documented btc
// mainnet Yprv/Ypub collision at 0x0295B43F.
type AmbiguousVersionError struct {
	Version uint32
	PrvType AddressType
	PubType AddressType
}

func (e *AmbiguousVersionError) Error() string {
	return fmt.Sprintf("networks: version %08X is ambiguous between extended-prv type %d and extended-pub type %d", e.Version, e.PrvType, e.PubType)
}

func (e *AmbiguousVersionError) Unwrap() error { return ErrAmbiguousVersion }
