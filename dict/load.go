package dict

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Load reads the Turkish and English frequency lists from disk and builds
// the membership sets. Files are memory-mapped when possible; every word
// is copied into the sets, so the mappings are released before returning.
func Load(turkishPath, englishPath string, topN int) (*Dictionaries, error) {
	turkish, releaseTR, err := readMapped(turkishPath)
	if err != nil {
		return nil, fmt.Errorf("turkish list %q: %w", turkishPath, err)
	}
	defer releaseTR()

	english, releaseEN, err := readMapped(englishPath)
	if err != nil {
		return nil, fmt.Errorf("english list %q: %w", englishPath, err)
	}
	defer releaseEN()

	return New(turkish, english, topN), nil
}

// readMapped returns the file contents and a release function. Mapping
// fails for empty files and on some filesystems; those fall back to a
// plain read.
func readMapped(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		return data, func() {}, nil
	}
	return m, func() { _ = m.Unmap() }, nil
}
