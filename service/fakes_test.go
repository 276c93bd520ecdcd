package service

import (
	"context"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type recordedRun struct {
	algorithm     string
	visited, path int
}

type fakeRecorder struct {
	runs []recordedRun
}

func (f *fakeRecorder) ObserveRun(algorithm string, visited, path int, _ time.Duration) {
	f.runs = append(f.runs, recordedRun{algorithm: algorithm, visited: visited, path: path})
}

type fakeUserRepo struct {
	users map[string]*dmn.User
	sync.Mutex
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*dmn.User)}
}

func (f *fakeUserRepo) Save(_ context.Context, user *dmn.User) error {
	f.Lock()
	defer f.Unlock()
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.User, error) {
	f.Lock()
	defer f.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

func (f *fakeUserRepo) ByUsername(_ context.Context, username string) (*dmn.User, error) {
	f.Lock()
	defer f.Unlock()
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

type layoutKey struct {
	owner uuid.UUID
	name  string
}

type fakeLayoutRepo struct {
	layouts map[layoutKey]*dmn.SavedLayout
}

func newFakeLayoutRepo() *fakeLayoutRepo {
	return &fakeLayoutRepo{layouts: make(map[layoutKey]*dmn.SavedLayout)}
}

func (f *fakeLayoutRepo) Save(_ context.Context, l *dmn.SavedLayout) error {
	f.layouts[layoutKey{l.OwnerID, l.Name}] = l
	return nil
}

func (f *fakeLayoutRepo) ByName(_ context.Context, owner uuid.UUID, name string) (*dmn.SavedLayout, error) {
	if l, ok := f.layouts[layoutKey{owner, name}]; ok {
		return l, nil
	}
	return nil, dmn.ErrLayoutNotFound
}

func (f *fakeLayoutRepo) ByOwner(_ context.Context, owner uuid.UUID) ([]*dmn.SavedLayout, error) {
	out := make([]*dmn.SavedLayout, 0)
	for k, l := range f.layouts {
		if k.owner == owner {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}
