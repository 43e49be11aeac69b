package fontreg

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontreg.
var (
	// ErrNotInitialized is the panic value of a resolution attempted before
	// the registry was populated. It signals a host integration bug.
	ErrNotInitialized = errors.New("fontreg: registry has not been initialized")

	// ErrNoLoader is returned when registration has no Loader to call.
	ErrNoLoader = errors.New("fontreg: no font loader")

	// ErrNoAssets is returned when an FSLoader has no file system.
	ErrNoAssets = errors.New("fontreg: no asset file system")

	// ErrEmptyAsset is the cause of a LoadError for a manifest font
	// without an asset name.
	ErrEmptyAsset = errors.New("fontreg: empty asset name")
)

// LoadError is logged when a manifest asset cannot be loaded. The asset
// is skipped and registration continues.
type LoadError struct {
	Family string
	Asset  string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("fontreg: load %s (family %s): %v", e.Asset, e.Family, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
