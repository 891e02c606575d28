package strstore

import "github.com/bnclabs/gostrstore/api"
import s "github.com/bnclabs/gosettings"

// Defaultsettings for strstore package.
//
//	"maxtextsize" (int64, default: 1MB)
//	    Texts longer than maxtextsize units are refused with
//	    api.ErrorTextTooLarge, before touching the arena.
func Defaultsettings() s.Settings {
	setts := s.Settings{
		"maxtextsize": api.MaxTextsize,
	}
	return setts
}
