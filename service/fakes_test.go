package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/identity"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

type fakeLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *fakeLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg)
}

func (l *fakeLogger) Info(msg string)    { l.log("INFO " + msg) }
func (l *fakeLogger) Warning(msg string) { l.log("WARNING " + msg) }
func (l *fakeLogger) Error(msg string)   { l.log("ERROR " + msg) }
func (l *fakeLogger) Debug(msg string)   { l.log("DEBUG " + msg) }

type fakePlayerRepo struct {
	mu      sync.Mutex
	players map[uuid.UUID]identity.Player
	saves   int
	saveErr error
}

func newFakePlayerRepo(players ...*identity.Player) *fakePlayerRepo {
	r := &fakePlayerRepo{players: make(map[uuid.UUID]identity.Player)}
	for _, p := range players {
		r.players[p.ID] = *p
	}
	return r
}

func (r *fakePlayerRepo) Save(p *identity.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.players[p.ID] = *p
	return nil
}

func (r *fakePlayerRepo) ByID(id uuid.UUID) (*identity.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return nil, i.ErrPlayerNotFound
	}
	return &p, nil
}

func (r *fakePlayerRepo) ByUsername(username string) (*identity.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Username == username {
			return &p, nil
		}
	}
	return nil, i.ErrPlayerNotFound
}

type fakeTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	f.claims, f.exp = claims, exp
	return "token", nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return f.claims, nil
}

type fakeMazeCache struct {
	entries map[string]*maze.Description
	getErr  error
	setErr  error
	gets    int
	sets    int
}

func newFakeMazeCache() *fakeMazeCache {
	return &fakeMazeCache{entries: make(map[string]*maze.Description)}
}

func (c *fakeMazeCache) Get(_ context.Context, key string) (*maze.Description, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	d, ok := c.entries[key]
	return d, ok, nil
}

func (c *fakeMazeCache) Set(_ context.Context, key string, d *maze.Description) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = d
	return nil
}

type fakeLeaderboard struct {
	levels    map[uuid.UUID]int
	recordErr error
	countErr  error
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{levels: make(map[uuid.UUID]int)}
}

func (l *fakeLeaderboard) Record(_ context.Context, id uuid.UUID, level int) error {
	if l.recordErr != nil {
		return l.recordErr
	}
	if level > l.levels[id] {
		l.levels[id] = level
	}
	return nil
}

func (l *fakeLeaderboard) Top(_ context.Context, n int64) ([]i.Standing, error) {
	standings := make([]i.Standing, 0, len(l.levels))
	for id, level := range l.levels {
		standings = append(standings, i.Standing{PlayerID: id, Level: level})
	}
	sort.Slice(standings, func(a, b int) bool { return standings[a].Level > standings[b].Level })
	if int64(len(standings)) > n {
		standings = standings[:n]
	}
	return standings, nil
}

func (l *fakeLeaderboard) Count(context.Context) (int64, error) {
	if l.countErr != nil {
		return 0, l.countErr
	}
	return int64(len(l.levels)), nil
}

type fakeLocker struct {
	mu      sync.Mutex
	held    map[string]bool
	locks   int
	lockErr error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) Lock(_ context.Context, name string) (func() error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lockErr != nil {
		return nil, l.lockErr
	}
	if l.held[name] {
		return nil, errors.New("already held")
	}
	l.held[name] = true
	l.locks++
	return func() error {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, name)
		return nil
	}, nil
}

// seqSource returns the queued offsets from low in order, then repeats the last one.
type seqSource struct {
	offsets []int
}

func (s *seqSource) Range(low, high int) int {
	off := s.offsets[0]
	if len(s.offsets) > 1 {
		s.offsets = s.offsets[1:]
	}
	if low+off >= high {
		return high - 1
	}
	return low + off
}
