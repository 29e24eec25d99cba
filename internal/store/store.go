// Package store persists countdown events in a local JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	cderrors "countdown/internal/errors"
	"countdown/internal/logger"
	"countdown/pkg/models"
)

// file is the on-disk layout of the event file.
type file struct {
	Events    []*record `json:"events"`
	UpdatedAt *string   `json:"updated_at,omitempty"`
}

// record mirrors models.Event with pointer fields so missing keys are
// detected on load.
type record struct {
	ID   string      `json:"id,omitempty"`
	Name *string     `json:"name"`
	Date *recordDate `json:"date"`
}

type recordDate struct {
	Day   *int `json:"day"`
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

// Store reads and appends events in a single JSON file.
type Store struct {
	path string
	now  func() time.Time
	// rename replaces the event file with the written temp file.
	rename func(oldpath, newpath string) error
}

// New returns a Store backed by the file at path. The file is created on the
// first Append.
func New(path string) *Store {
	return &Store{path: path, now: time.Now, rename: os.Rename}
}

// Path returns the event file location.
func (s *Store) Path() string { return s.path }

// Load returns all stored events in file order. A missing or empty file
// yields no events.
func (s *Store) Load() ([]models.Event, error) {
	defer logger.Timer("store load")()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("store: %s does not exist yet", s.path)
		return []models.Event{}, nil
	}
	if err != nil {
		return nil, cderrors.Wrap(cderrors.KindStorage, fmt.Sprintf("read %s", s.path), err)
	}
	events, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	logger.Infof("Loaded %d events from %s", len(events), s.path)
	return events, nil
}

// Append validates e and adds it to the end of the stored collection. The
// file is rewritten through a temp file and rename, so a failed append leaves
// the previous contents in place. The stored event, with its assigned ID, is
// returned.
func (s *Store) Append(e models.Event) (models.Event, error) {
	if err := e.Validate(); err != nil {
		return models.Event{}, err
	}
	events, err := s.Load()
	if err != nil {
		return models.Event{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	events = append(events, e)
	if err := s.save(events); err != nil {
		return models.Event{}, err
	}
	logger.Infof("Added event %q on %s (%s)", e.Name, e.Date, e.ID)
	return e, nil
}

// save writes events atomically.
func (s *Store) save(events []models.Event) error {
	defer logger.Timer("store save")()
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return cderrors.Wrap(cderrors.KindStorage, fmt.Sprintf("create %s", dir), err)
	}
	data, err := encode(events, s.now())
	if err != nil {
		return cderrors.Wrap(cderrors.KindStorage, "encode events", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return cderrors.Wrap(cderrors.KindStorage, fmt.Sprintf("create temp file in %s", dir), err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logger.Warn("remove temp file %s: %v", tmpName, rmErr)
		}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return cderrors.Wrap(cderrors.KindStorage, fmt.Sprintf("write %s", tmpName), err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		cleanup()
		return cderrors.Wrap(cderrors.KindStorage, fmt.Sprintf("chmod %s", tmpName), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return cderrors.Wrap(cderrors.KindStorage, fmt.Sprintf("sync %s", tmpName), err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return cderrors.Wrap(cderrors.KindStorage, fmt.Sprintf("close %s", tmpName), err)
	}
	if err := s.rename(tmpName, s.path); err != nil {
		cleanup()
		return cderrors.Wrap(cderrors.KindStorage, fmt.Sprintf("replace %s", s.path), err)
	}
	logger.Debugf("store: wrote %d events to %s", len(events), s.path)
	return nil
}

func encode(events []models.Event, now time.Time) ([]byte, error) {
	f := file{Events: make([]*record, 0, len(events))}
	for _, e := range events {
		name := e.Name
		day, month, year := e.Date.Day, int(e.Date.Month), e.Date.Year
		f.Events = append(f.Events, &record{
			ID:   e.ID,
			Name: &name,
			Date: &recordDate{Day: &day, Month: &month, Year: &year},
		})
	}
	ts := now.Format(time.RFC3339)
	f.UpdatedAt = &ts
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func decode(data []byte) ([]models.Event, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Event{}, nil
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, cderrors.Wrap(cderrors.KindFormat, "parse event file", err)
	}
	events := make([]models.Event, 0, len(f.Events))
	for i, r := range f.Events {
		e, err := r.event()
		if err != nil {
			return nil, cderrors.Wrap(cderrors.KindFormat, fmt.Sprintf("event %d", i), err)
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *record) event() (models.Event, error) {
	if r == nil {
		return models.Event{}, errors.New("record is null")
	}
	if r.Name == nil {
		return models.Event{}, errors.New("missing name")
	}
	if r.Date == nil || r.Date.Day == nil || r.Date.Month == nil || r.Date.Year == nil {
		return models.Event{}, errors.New("missing date")
	}
	e := models.Event{
		ID:   r.ID,
		Name: *r.Name,
	}
	e.Date.Day = *r.Date.Day
	e.Date.Month = time.Month(*r.Date.Month)
	e.Date.Year = *r.Date.Year
	if err := e.Validate(); err != nil {
		return models.Event{}, err
	}
	return e, nil
}
