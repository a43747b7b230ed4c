package actionlog

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"notepad/internal/logging"
	"notepad/internal/types"
)

var bucketActions = []byte("actions")

// JournalEntry is one stored action. Session groups the entries written by
// a single run of the program.
type JournalEntry struct {
	Seq     uint64       `json:"seq"`
	Session string       `json:"session"`
	At      time.Time    `json:"at"`
	Action  types.Action `json:"action"`
	Message string       `json:"message"`
}

// Journal is an append-only bbolt log of note actions. Only actions are
// stored; the note list itself is never persisted.
type Journal struct {
	db      *bolt.DB
	session string
	diag    logging.Logger
	now     func() time.Time
}

func OpenJournal(path string, diag logging.Logger) (*Journal, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("journal path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketActions)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if diag == nil {
		diag = logging.Nop()
	}
	return &Journal{
		db:      db,
		session: uuid.New().String(),
		diag:    diag.With(logging.F("component", "journal")),
		now:     time.Now,
	}, nil
}

func (j *Journal) Session() string {
	return j.session
}

func (j *Journal) LogAction(action types.Action) {
	if j == nil || j.db == nil {
		return
	}
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketActions)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(JournalEntry{
			Seq:     seq,
			Session: j.session,
			At:      j.now().UTC(),
			Action:  action,
			Message: action.Message(),
		})
		if err != nil {
			return err
		}
		return b.Put(sequenceKey(seq), data)
	})
	if err != nil {
		j.diag.Warn("journal write failed", logging.F("kind", string(action.Kind)), logging.Err(err))
	}
}

// Entries returns every stored entry in write order.
func (j *Journal) Entries(ctx context.Context) ([]JournalEntry, error) {
	out := make([]JournalEntry, 0)
	err := j.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketActions)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var entry JournalEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			out = append(out, entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

func sequenceKey(seq uint64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], seq)
	return key[:]
}
