package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/artem13815/resume-editor/pkg/resume"
	"github.com/artem13815/resume-editor/pkg/storage/jsondir"
)

// ResumeRepository keeps resumes in memory and mirrors every save to
// <dir>/<id>.json. Reads fall back to the directory on a memory miss.
//
// The mutex only protects the map. A save updates memory before the file, so
// a failed file write leaves the two out of step.
type ResumeRepository struct {
	mu    sync.RWMutex
	mem   map[string]resume.Resume
	order []string // keys of mem in first-insertion order

	dir *jsondir.Dir
	now resume.Clock
	log *slog.Logger
}

type Option func(*ResumeRepository)

// WithClock overrides the time source used for generated ids.
func WithClock(c resume.Clock) Option {
	return func(r *ResumeRepository) { r.now = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *ResumeRepository) { r.log = l }
}

func NewResumeRepository(dir *jsondir.Dir, opts ...Option) *ResumeRepository {
	r := &ResumeRepository{
		mem: make(map[string]resume.Resume),
		dir: dir,
		now: time.Now,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ResumeRepository) Save(ctx context.Context, rs resume.Resume) (string, error) {
	if rs.ID == "" {
		rs.ID = resume.NewID(r.now())
	}
	rec := rs.Clone()
	r.put(rec.ID, rec)

	if err := r.dir.Write(rec.ID, rec); err != nil {
		return "", fmt.Errorf("write %s: %w", rec.ID, err)
	}
	r.log.DebugContext(ctx, "resume saved", "id", rec.ID, "file", r.dir.FileName(rec.ID))
	return rec.ID, nil
}

func (r *ResumeRepository) Get(ctx context.Context, id string) (resume.Resume, error) {
	if rec, ok := r.lookup(id); ok {
		return rec.Clone(), nil
	}
	var rec resume.Resume
	if err := r.dir.Read(id, &rec); err != nil {
		if errors.Is(err, jsondir.ErrNotExist) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	r.put(id, rec)
	r.log.DebugContext(ctx, "resume loaded from file", "id", id)
	return rec.Clone(), nil
}

func (r *ResumeRepository) List(ctx context.Context) (resume.ListResult, error) {
	res := resume.ListResult{Items: []resume.Summary{}}

	r.mu.RLock()
	inMemory := make(map[string]struct{}, len(r.order))
	for _, id := range r.order {
		inMemory[id] = struct{}{}
		res.Items = append(res.Items, resume.Summary{
			ID:      id,
			Name:    displayName(r.mem[id]),
			SavedAt: resume.OriginMemory,
		})
	}
	r.mu.RUnlock()

	keys, err := r.dir.Keys()
	if err != nil {
		return resume.ListResult{}, err
	}
	for _, id := range keys {
		if _, ok := inMemory[id]; ok {
			continue
		}
		// Get would never resolve such a stem
		if !resume.ValidID(id) {
			r.log.DebugContext(ctx, "ignoring file with non-id name", "file", r.dir.FileName(id))
			continue
		}
		var row fileRow
		if err := r.dir.Read(id, &row); err != nil {
			r.log.WarnContext(ctx, "skipping unreadable resume file", "file", r.dir.FileName(id), "error", err)
			res.Skipped = append(res.Skipped, r.dir.FileName(id))
			continue
		}
		res.Items = append(res.Items, resume.Summary{
			ID:      id,
			Name:    row.name(),
			SavedAt: resume.OriginFile,
		})
	}
	return res, nil
}

func (r *ResumeRepository) put(id string, rec resume.Resume) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mem[id]; !ok {
		r.order = append(r.order, id)
	}
	r.mem[id] = rec
}

func (r *ResumeRepository) lookup(id string) (resume.Resume, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.mem[id]
	return rec, ok
}

// fileRow is the part of a stored file the listing reads. The rest of the
// document may hold any JSON.
type fileRow struct {
	PersonalInfo json.RawMessage `json:"personalInfo"`
}

// name falls back to resume.UnknownName when personalInfo.name is missing
// or not a non-empty string.
func (f fileRow) name() string {
	var pi struct {
		Name any `json:"name"`
	}
	if err := json.Unmarshal(f.PersonalInfo, &pi); err != nil {
		return resume.UnknownName
	}
	if s, ok := pi.Name.(string); ok && s != "" {
		return s
	}
	return resume.UnknownName
}

func displayName(rec resume.Resume) string {
	if rec.PersonalInfo.Name == "" {
		return resume.UnknownName
	}
	return rec.PersonalInfo.Name
}
