// Package dictionary keeps autocomplete entries and indexes them by key.
//
// The Dictionary allocates every Entry and hands only pointers to the
// prefix index, which never owns them.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openacid/testkeys"
	"github.com/rs/zerolog"

	"github.com/e11jah/trie"
)

type Entry struct {
	Key         string
	Description string
}

type Dictionary struct {
	index trie.Index[Entry]
	log   zerolog.Logger
}

func New(log zerolog.Logger) *Dictionary {
	return &Dictionary{
		index: trie.New[Entry](),
		log:   log,
	}
}

// Add stores key with description. An existing entry is updated in place so
// pointers already handed out keep observing the current description.
func (d *Dictionary) Add(key, description string) {
	if e := d.index.WordExists(key); e != nil {
		d.log.Debug().Str("key", key).Msg("updating existing entry")
		e.Description = description
		return
	}
	d.index.Insert(&Entry{Key: key, Description: description}, key)
}

func (d *Dictionary) Lookup(key string) (Entry, bool) {
	e := d.index.WordExists(key)
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

func (d *Dictionary) Remove(key string) bool {
	return d.index.Erase(key)
}

func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.index.PrefixExists(prefix)
}

// Complete returns the entries whose key starts with prefix in key order,
// at most limit of them when limit > 0.
func (d *Dictionary) Complete(prefix string, limit int) []Entry {
	if limit <= 0 {
		found := d.index.AutoComplete(prefix)
		entries := make([]Entry, 0, len(found))
		for _, e := range found {
			entries = append(entries, *e)
		}
		return entries
	}

	entries := make([]Entry, 0, limit)
	d.index.ForEachPrefix(prefix, func(e *Entry) bool {
		entries = append(entries, *e)
		return len(entries) < limit
	})
	return entries
}

func (d *Dictionary) Len() int {
	return d.index.Size()
}

// Load reads entries from r, one per line as key<TAB>description. A line
// without a tab uses the key as its description. Blank lines and lines
// starting with '#' are skipped.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, description, found := strings.Cut(line, "\t")
		if !found {
			description = key
		}
		if key == "" {
			d.log.Warn().Int("line", lineNo).Msg("skipping entry with empty key")
			continue
		}
		d.Add(key, description)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read dictionary at line %d: %w", lineNo, err)
	}

	d.log.Debug().Int("lines", lineNo).Int("entries", d.Len()).Msg("dictionary loaded")
	return nil
}

func (d *Dictionary) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	return d.Load(f)
}

// LoadKeyset adds every key of the named testkeys set, each key being its
// own description.
func (d *Dictionary) LoadKeyset(name string) error {
	if !hasKeyset(name) {
		return fmt.Errorf("unknown keyset %q", name)
	}
	for _, k := range testkeys.Load(name) {
		d.Add(k, k)
	}

	d.log.Debug().Str("keyset", name).Int("entries", d.Len()).Msg("keyset loaded")
	return nil
}

func Keysets() []string {
	return testkeys.AssetNames()
}

func hasKeyset(name string) bool {
	for _, n := range testkeys.AssetNames() {
		if n == name {
			return true
		}
	}
	return false
}
