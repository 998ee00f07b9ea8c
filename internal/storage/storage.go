// Package storage provides the session move journal.
//
// The journal lives in an in-memory BadgerDB instance owned by one session.
// Nothing is written to disk and nothing survives the process.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/focuschess/internal/board"
)

const keyPrefix = "move/"

// Entry is one completed drop.
type Entry struct {
	Seq       uint64       `json:"seq"`
	From      board.Square `json:"from"`
	To        board.Square `json:"to"`
	Piece     board.Piece  `json:"piece"`
	Displaced board.Piece  `json:"displaced"`
	At        time.Time    `json:"at"`
}

// String returns a short description, e.g. "RookWhite A1-C1 x BishopWhite".
func (e Entry) String() string {
	s := fmt.Sprintf("%s %s-%s", e.Piece.Name(), e.From, e.To)
	if e.Displaced != board.NoPiece {
		s += " x " + e.Displaced.Name()
	}
	return s
}

// Journal wraps BadgerDB for the session's move history.
type Journal struct {
	db  *badger.DB
	seq uint64
}

// OpenJournal creates an empty in-memory journal.
func OpenJournal() (*Journal, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

func entryKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyPrefix, seq))
}

// Append stores e under the next sequence number and returns it with Seq
// filled in. A zero At is set to the current time.
func (j *Journal) Append(e Entry) (Entry, error) {
	e.Seq = j.seq + 1
	if e.At.IsZero() {
		e.At = time.Now()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return Entry{}, err
	}

	err = j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(e.Seq), data)
	})
	if err != nil {
		return Entry{}, fmt.Errorf("append move %d: %w", e.Seq, err)
	}
	j.seq = e.Seq
	return e, nil
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return int(j.seq)
}

// Last returns the most recent entry.
func (j *Journal) Last() (Entry, bool, error) {
	if j.seq == 0 {
		return Entry{}, false, nil
	}

	var e Entry
	err := j.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entryKey(j.seq))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err == badger.ErrKeyNotFound {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	return e, true, nil
}

// Entries returns every entry in sequence order.
func (j *Journal) Entries() ([]Entry, error) {
	entries := make([]Entry, 0, j.seq)

	err := j.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var e Entry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			})
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})

	return entries, err
}

// Clear removes every entry and restarts the sequence.
func (j *Journal) Clear() error {
	if err := j.db.DropPrefix([]byte(keyPrefix)); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}
	j.seq = 0
	return nil
}
