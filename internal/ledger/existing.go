package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// uuidLine matches an indented `uuid: "..."` metadata line. Commented lines
// start with ';' and never match.
var uuidLine = regexp.MustCompile(`^\s+uuid:\s*"((?:[^"\\]|\\.)*)"`)

// ReadUUIDs scans beancount text for uuid metadata values.
func ReadUUIDs(r io.Reader) (map[string]bool, error) {
	uuids := make(map[string]bool)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		m := uuidLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		uuids[unquote(m[1])] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning ledger: %w", err)
	}
	return uuids, nil
}

// LoadUUIDs reads the uuids of the ledger at path. A missing file yields an
// empty set.
func LoadUUIDs(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	uuids, err := ReadUUIDs(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return uuids, nil
}

func unquote(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
