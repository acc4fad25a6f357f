package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/barnettben/Datastream/pkg/datastream"
	"github.com/barnettben/Datastream/pkg/datastream/datastreamtest"
	"github.com/barnettben/Datastream/pkg/storage"
)

type fakeArchive struct {
	mu      sync.Mutex
	sources []string
	err     error
}

func (a *fakeArchive) Put(source string, doc *datastream.Document) (storage.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return storage.Entry{}, a.err
	}
	a.sources = append(a.sources, source)
	return storage.Entry{ID: ksuid.New().String(), Source: source, Summary: doc.Summary()}, nil
}

func (a *fakeArchive) stored() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string{}, a.sources...)
}

func newTestInbox(t *testing.T, archive Archive) (*Inbox, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "inbox")
	return New(Config{Inbox: dir, Debounce: 20 * time.Millisecond}, archive, nil), dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0750))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	in := New(Config{Inbox: "/srv/inbox"}, &fakeArchive{}, nil)
	assert.Equal(t, filepath.Join("/srv/inbox", "processed"), in.cfg.Processed)
	assert.Equal(t, filepath.Join("/srv/inbox", "failed"), in.cfg.Failed)
	assert.Equal(t, defaultDebounce, in.cfg.Debounce)
}

func TestImport(t *testing.T) {
	archive := &fakeArchive{}
	in, dir := newTestInbox(t, archive)
	require.NoError(t, os.MkdirAll(in.cfg.Processed, 0750))
	require.NoError(t, os.MkdirAll(in.cfg.Failed, 0750))

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, dir, "herd.dat", datastreamtest.File("0001", "0002"))

		entry, err := in.Import(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "herd.dat", entry.Source)
		assert.Equal(t, 2, entry.Summary.Animals)

		assert.NoFileExists(t, path)
		assert.FileExists(t, filepath.Join(in.cfg.Processed, "herd.dat"))
	})

	t.Run("same name again", func(t *testing.T) {
		path := writeFile(t, dir, "herd.dat", datastreamtest.File())

		_, err := in.Import(context.Background(), path)
		require.NoError(t, err)

		moved, err := os.ReadDir(in.cfg.Processed)
		require.NoError(t, err)
		assert.Len(t, moved, 2)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, dir, "broken.dat", datastreamtest.Broken())

		_, err := in.Import(context.Background(), path)
		require.Error(t, err)
		assert.FileExists(t, filepath.Join(in.cfg.Failed, "broken.dat"))
	})

	assert.Equal(t, []string{"herd.dat", "herd.dat"}, archive.stored())
	stats := in.Stats()
	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 1, stats.Failed)
	assert.Contains(t, stats.LastError, "no evaluation records")
}

func TestImport_ArchiveFailure(t *testing.T) {
	in, dir := newTestInbox(t, &fakeArchive{err: errors.New("disk full")})
	require.NoError(t, os.MkdirAll(in.cfg.Failed, 0750))
	path := writeFile(t, dir, "herd.dat", datastreamtest.File())

	_, err := in.Import(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.FileExists(t, filepath.Join(in.cfg.Failed, "herd.dat"))
}

func TestImport_CancelledLeavesFile(t *testing.T) {
	in, dir := newTestInbox(t, &fakeArchive{})
	path := writeFile(t, dir, "herd.dat", datastreamtest.File())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.Import(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
	assert.FileExists(t, path)
	assert.Zero(t, in.Stats().Failed)
}

func TestIgnored(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"/in/herd.dat", false},
		{"/in/.herd.dat.swp", true},
		{"/in/herd.dat.part", true},
		{"/in/herd.tmp", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ignored(tt.name))
		})
	}
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	archive := &fakeArchive{}
	in, dir := newTestInbox(t, archive)

	// Present before the watcher starts
	writeFile(t, dir, "early.dat", datastreamtest.File())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- in.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(in.cfg.Processed, "early.dat"))
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	writeFile(t, dir, "late.dat", datastreamtest.File("0007"))
	writeFile(t, dir, "bad.dat", datastreamtest.Broken())
	writeFile(t, dir, ".hidden.dat", datastreamtest.File())

	require.Eventually(t, func() bool {
		_, errLate := os.Stat(filepath.Join(in.cfg.Processed, "late.dat"))
		_, errBad := os.Stat(filepath.Join(in.cfg.Failed, "bad.dat"))
		return errLate == nil && errBad == nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}

	assert.ElementsMatch(t, []string{"early.dat", "late.dat"}, archive.stored())
	assert.FileExists(t, filepath.Join(dir, ".hidden.dat"))
	stats := in.Stats()
	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 1, stats.Failed)
}

func TestRun_BadInbox(t *testing.T) {
	// A regular file where the inbox directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	in := New(Config{Inbox: filepath.Join(blocker, "inbox")}, &fakeArchive{}, nil)
	err := in.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")
}
