package core

import (
	"errors"
	"strings"
)

// Local CSV pre-flight failures. When one of these fires no upload request is
// sent; the messages are shown to the user as-is.
var (
	ErrNoFile        = errors.New("nessun file selezionato")
	ErrNotCSV        = errors.New("selezionare un file .csv")
	ErrAlreadyLoaded = errors.New("hai già caricato questo file")
)

// CheckCSVName validates a picked file name before any upload attempt:
// a name must be present, must end in .csv (case-insensitive) and must differ
// from the last name uploaded in this session. The last check is a cheap
// double-submit guard on the name only, not a content hash, so re-uploading a
// modified file under the same name is still blocked.
func CheckCSVName(name, lastUploaded string) error {
	if name == "" {
		return ErrNoFile
	}
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		return ErrNotCSV
	}
	if name == lastUploaded {
		return ErrAlreadyLoaded
	}
	return nil
}
