package util

import "errors"

// ErrUndecodableText marks a text file rejected by every configured encoding.
// The batch treats it like any other per-file extraction failure.
var ErrUndecodableText = errors.New("no known encoding decodes this file")
