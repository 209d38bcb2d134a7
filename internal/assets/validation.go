package assets

import (
	"fmt"
	"regexp"
)

var assetName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateAssetName accepts lowercase names made of letters, digits,
// dashes and underscores, such as "theme-detect".
func ValidateAssetName(name string) error {
	if !assetName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
