package assets

import (
	"errors"
	"strings"
)

var (
	// ErrWrongType means the declared MIME type is outside the policy.
	ErrWrongType = errors.New("file type not allowed")
	// ErrTooLarge means the upload exceeds the policy size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrNotFound means the referenced asset does not exist.
	ErrNotFound = errors.New("asset not found")
	// ErrProtected means the referenced asset is the default and may not be deleted.
	ErrProtected = errors.New("asset is protected")
)

const (
	mib = 1 << 20

	mimeICO          = "image/x-icon"
	mimeICOMicrosoft = "image/vnd.microsoft.icon"
)

// Policy constrains an upload by declared MIME type and size. Policies are
// parameterized per call site: generic content images are loose, branding
// uploads are strict.
type Policy struct {
	Name     string
	MaxBytes int64
	Allowed  func(mimeType string) bool
}

// ImagePolicy accepts any image (ico included) up to 5 MiB.
var ImagePolicy = Policy{
	Name:     "image",
	MaxBytes: 5 * mib,
	Allowed: func(mt string) bool {
		return strings.HasPrefix(mt, "image/") || mt == mimeICO || mt == mimeICOMicrosoft
	},
}

// LogoPolicy accepts PNG only, up to 5 MiB.
var LogoPolicy = Policy{
	Name:     "logo",
	MaxBytes: 5 * mib,
	Allowed:  func(mt string) bool { return mt == "image/png" },
}

// FaviconPolicy accepts ICO only, up to 1 MiB.
var FaviconPolicy = Policy{
	Name:     "favicon",
	MaxBytes: 1 * mib,
	Allowed:  func(mt string) bool { return mt == mimeICO || mt == mimeICOMicrosoft },
}
