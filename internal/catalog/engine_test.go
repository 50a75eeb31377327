package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/DjordjeVuckovic/news-finder/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePages struct {
	mu    sync.Mutex
	body  string
	calls int
}

func (f *fakePages) Body(ctx context.Context, url string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.body
}

type fakeMirror struct {
	mu      sync.Mutex
	indexed []domain.Article
	err     error
}

func (m *fakeMirror) Index(ctx context.Context, a domain.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indexed = append(m.indexed, a)
	return m.err
}

func article(url string) domain.Article {
	title := "title"
	return domain.Article{URL: url, Title: &title}
}

func TestUpsert_InsertsNewArticle(t *testing.T) {
	store := in_mem.NewInMemStorer()
	pages := &fakePages{body: "<p>hello</p>"}
	e := NewEngine(store, pages)

	row, err := e.Upsert(context.Background(), article("https://a.example/1"))
	require.NoError(t, err)
	assert.Equal(t, 0, row.WordCount)
	assert.Equal(t, 0, pages.calls)
}

func TestUpsert_ComputesWordCountOnInsert(t *testing.T) {
	store := in_mem.NewInMemStorer()
	pages := &fakePages{body: "<p>hello</p>"}
	e := NewEngine(store, pages)

	row, err := e.Upsert(context.Background(), article("https://a.example/1"), ComputeWordCount())
	require.NoError(t, err)
	assert.Equal(t, 5, row.WordCount)
	assert.Equal(t, 1, pages.calls)
}

func TestUpsert_SuppliedCountSkipsFetch(t *testing.T) {
	store := in_mem.NewInMemStorer()
	pages := &fakePages{body: "<p>hello</p>"}
	e := NewEngine(store, pages)

	row, err := e.Upsert(context.Background(), article("https://a.example/1"), ComputeWordCount(), WithWordCount(42))
	require.NoError(t, err)
	assert.Equal(t, 42, row.WordCount)
	assert.Equal(t, 0, pages.calls)
}

func TestUpsert_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewInMemStorer()
	e := NewEngine(store, &fakePages{})

	first, err := e.Upsert(ctx, article("https://a.example/1"), WithWordCount(7))
	require.NoError(t, err)
	second, err := e.Upsert(ctx, article("https://a.example/1"), WithWordCount(7))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	rows, err := store.FilterByWordCountRange(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUpsert_ExistingOnlyRefreshesWordCount(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewInMemStorer()
	pages := &fakePages{body: "<p>hello world</p>"}
	e := NewEngine(store, pages)

	original, err := e.Upsert(ctx, article("https://a.example/1"), WithWordCount(3))
	require.NoError(t, err)

	changed := article("https://a.example/1")
	other := "another title"
	changed.Title = &other

	row, err := e.Upsert(ctx, changed, ComputeWordCount())
	require.NoError(t, err)
	assert.Equal(t, original.ID, row.ID)
	assert.Equal(t, "title", *row.Title)
	assert.Equal(t, 11, row.WordCount)
	assert.Equal(t, original.IngestedDate, row.IngestedDate)
}

func TestUpsert_ExistingWithoutCountIsUnchanged(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewInMemStorer()
	pages := &fakePages{body: "<p>x</p>"}
	e := NewEngine(store, pages)

	_, err := e.Upsert(ctx, article("https://a.example/1"), WithWordCount(9))
	require.NoError(t, err)

	row, err := e.Upsert(ctx, article("https://a.example/1"))
	require.NoError(t, err)
	assert.Equal(t, 9, row.WordCount)
	assert.Equal(t, 0, pages.calls)
}

func TestUpsert_ConcurrentSameURL(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewInMemStorer()
	e := NewEngine(store, &fakePages{body: "<p>abc</p>"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Upsert(ctx, article("https://a.example/race"), ComputeWordCount())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows, err := store.FilterByWordCountRange(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].WordCount)
}

func TestUpsert_MirrorsWritesAndIgnoresMirrorErrors(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewInMemStorer()
	mirror := &fakeMirror{err: errors.New("es down")}
	e := NewEngine(store, &fakePages{}, WithMirror(mirror))

	_, err := e.Upsert(ctx, article("https://a.example/1"), WithWordCount(1))
	require.NoError(t, err)
	_, err = e.Upsert(ctx, article("https://a.example/1"), WithWordCount(1))
	require.NoError(t, err)
	_, err = e.Upsert(ctx, article("https://a.example/1"), WithWordCount(2))
	require.NoError(t, err)

	require.Len(t, mirror.indexed, 2)
	assert.Equal(t, 1, mirror.indexed[0].WordCount)
	assert.Equal(t, 2, mirror.indexed[1].WordCount)
}

func TestUpsert_UnknownChannel(t *testing.T) {
	store := in_mem.NewInMemStorer()
	e := NewEngine(store, &fakePages{})

	a := article("https://a.example/1")
	a.AttachChannel(&domain.Channel{Name: "ghost"})

	_, err := e.Upsert(context.Background(), a)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMeasurePage_CustomCounter(t *testing.T) {
	e := NewEngine(nil, &fakePages{body: "abc"}, WithCounter(func(body string) int { return len(body) * 2 }))
	assert.Equal(t, 6, e.MeasurePage(context.Background(), "https://a.example"))

	assert.Equal(t, 0, NewEngine(nil, nil).MeasurePage(context.Background(), "https://a.example"))
}
