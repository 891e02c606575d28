package api

import "errors"

// ErrorOutofMemory operation cannot succeed because acquiring another
// slab would exceed the capacity configured on the allocator.
var ErrorOutofMemory = errors.New("outofmemory")

// ErrorTextTooLarge operation cannot succeed because the text exceeds
// the maximum size configured on the string-store instance.
var ErrorTextTooLarge = errors.New("textTooLarge")

// ErrorStoreReleased operation cannot succeed because the string-store
// instance was already released.
var ErrorStoreReleased = errors.New("storeReleased")

// MinTextsize minimum text size, empty texts are valid. Stores reject
// a configured "maxtextsize" at or below this bound.
const MinTextsize = int64(0)

// MaxTextsize maximum text size interned by a store, unless configured
// otherwise.
const MaxTextsize = int64(1024 * 1024)
