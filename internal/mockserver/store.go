package mockserver

import (
	"fmt"
	"sort"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
)

const letterKeyFmt = "letter:%d"

// AddressRecord is a stored postal address.
type AddressRecord struct {
	Name    *string `json:"name"`
	Street1 *string `json:"street1"`
	Street2 *string `json:"street2"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country *string `json:"country"`
}

// LetterRecord is a stored letter.
type LetterRecord struct {
	ID          int
	Status      string
	DocumentURL string
	Sender      *AddressRecord
	Recipient   *AddressRecord
	MailingDate time.Time
	SentAt      time.Time
	PurchasedAt time.Time
}

// Store is an in-memory letter store backed by patrickmn/go-cache.
// Letters never expire.
type Store struct {
	letters *cache.Cache // keyed by "letter:{id}"

	mu     sync.Mutex // guards nextID and read-modify-write updates
	nextID int
}

// NewStore creates an empty store. Ids start at 1.
func NewStore() *Store {
	return &Store{
		letters: cache.New(cache.NoExpiration, 0),
		nextID:  1,
	}
}

func letterKey(id int) string {
	return fmt.Sprintf(letterKeyFmt, id)
}

// Create stores rec under a new id and returns a copy.
func (s *Store) Create(rec LetterRecord) LetterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID
	s.nextID++
	s.letters.Set(letterKey(rec.ID), &rec, cache.NoExpiration)
	return rec
}

// Get returns a copy of the letter with the given id.
func (s *Store) Get(id int) (LetterRecord, bool) {
	v, ok := s.letters.Get(letterKey(id))
	if !ok {
		return LetterRecord{}, false
	}
	return *v.(*LetterRecord), true
}

// Update applies fn to the stored letter and returns the result.
// fn's error aborts the update.
func (s *Store) Update(id int, fn func(*LetterRecord) error) (LetterRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.letters.Get(letterKey(id))
	if !ok {
		return LetterRecord{}, false, nil
	}
	rec := *v.(*LetterRecord)
	if err := fn(&rec); err != nil {
		return LetterRecord{}, true, err
	}
	s.letters.Set(letterKey(id), &rec, cache.NoExpiration)
	return rec, true, nil
}

// List returns every letter ordered by id.
func (s *Store) List() []LetterRecord {
	items := s.letters.Items()
	out := make([]LetterRecord, 0, len(items))
	for _, item := range items {
		out = append(out, *item.Object.(*LetterRecord))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MarkSent records that a letter went out at t.
func (s *Store) MarkSent(id int, t time.Time) bool {
	_, ok, _ := s.Update(id, func(rec *LetterRecord) error {
		rec.SentAt = t
		rec.Status = StatusSent
		return nil
	})
	return ok
}
