package models

import "errors"

var (
	ErrUnknownRepo   = errors.New("unknown pacmc repo")
	ErrUnsupportedOS = errors.New("unsupported operating system")
	ErrUnknownFormat = errors.New("unknown manifest format")
)
