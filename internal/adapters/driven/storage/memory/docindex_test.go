package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

func doc(name, content string) domain.Document {
	return domain.Document{
		Fingerprint: domain.Fingerprint(name),
		Name:        name,
		Location:    "/docs/" + name,
		Content:     content,
		Origin:      domain.OriginLocal,
	}
}

func TestNewDocumentIndex(t *testing.T) {
	index := NewDocumentIndex()
	require.NotNil(t, index)
	assert.Zero(t, index.Len())
	assert.Empty(t, index.All())
	assert.Empty(t, index.Keys())
}

func TestDocumentIndex_PutAndGet(t *testing.T) {
	index := NewDocumentIndex()
	d := doc("report.pdf", "quarterly numbers")

	index.Put(d)

	got, err := index.Get(d.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, d, *got)
	assert.Equal(t, 1, index.Len())
}

func TestDocumentIndex_Get_NotFound(t *testing.T) {
	index := NewDocumentIndex()

	got, err := index.Get("deadbeef")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentIndex_InsertionOrder(t *testing.T) {
	index := NewDocumentIndex()
	names := []string{"c.txt", "a.txt", "b.txt"}
	for _, n := range names {
		index.Put(doc(n, ""))
	}

	all := index.All()
	require.Len(t, all, 3)
	for i, n := range names {
		assert.Equal(t, n, all[i].Name)
		assert.Equal(t, domain.Fingerprint(n), index.Keys()[i])
	}
}

func TestDocumentIndex_OverwriteKeepsPosition(t *testing.T) {
	index := NewDocumentIndex()
	index.Put(doc("a.txt", "old"))
	index.Put(doc("b.txt", ""))

	index.Put(doc("a.txt", "new"))

	all := index.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a.txt", all[0].Name)
	assert.Equal(t, "new", all[0].Content)
	assert.Equal(t, "b.txt", all[1].Name)
}

func TestDocumentIndex_SnapshotsAreCopies(t *testing.T) {
	index := NewDocumentIndex()
	index.Put(doc("a.txt", "text"))

	keys := index.Keys()
	keys[0] = "mutated"
	got, err := index.Get(domain.Fingerprint("a.txt"))
	require.NoError(t, err)
	got.Content = "mutated"

	again, err := index.Get(domain.Fingerprint("a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "text", again.Content)
	assert.Equal(t, domain.Fingerprint("a.txt"), index.Keys()[0])
}

func TestDocumentIndex_ConcurrentAccess(t *testing.T) {
	index := NewDocumentIndex()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			index.Put(doc(fmt.Sprintf("file-%d.txt", n), "content"))
		}(i)
		go func() {
			defer wg.Done()
			_ = index.All()
			_ = index.Len()
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, index.Len())
}
