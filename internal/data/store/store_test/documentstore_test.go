package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/akulsh/TutorAPI/internal/data/redisStore"
	"github.com/akulsh/TutorAPI/internal/data/store"
	"github.com/akulsh/TutorAPI/internal/domain/tutorModel"
)

func newTestStore(t *testing.T) *store.RedisDocumentStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return store.TestDocumentStore(redisStore.NewTestStore(client))
}

func sampleDoc(id string, uploaded time.Time) tutorModel.Document {
	return tutorModel.Document{
		Id:          id,
		Title:       "Doc " + id,
		ContentType: tutorModel.ContentTypeText,
		UploadTime:  uploaded,
		ChunksCount: 3,
	}
}

func TestRedisDocumentStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := sampleDoc("doc-1", time.Now().UTC().Truncate(time.Second))
	if err := s.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	got, found := s.GetDocument(ctx, "doc-1")
	if !found {
		t.Fatal("document not found after save")
	}
	if got.Title != doc.Title || got.ChunksCount != doc.ChunksCount {
		t.Errorf("got %+v; want %+v", got, doc)
	}
}

func TestRedisDocumentStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	if _, found := s.GetDocument(context.Background(), "nope"); found {
		t.Error("expected miss for unknown id")
	}
}

func TestRedisDocumentStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i, id := range []string{"old", "mid", "new"} {
		doc := sampleDoc(id, base.Add(time.Duration(i)*time.Hour))
		if err := s.SaveDocument(ctx, doc); err != nil {
			t.Fatalf("SaveDocument(%s) failed: %v", id, err)
		}
	}

	docs, err := s.ListDocuments(ctx, 100)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	want := []string{"new", "mid", "old"}
	if len(docs) != len(want) {
		t.Fatalf("got %d documents; want %d", len(docs), len(want))
	}
	for i, id := range want {
		if docs[i].Id != id {
			t.Errorf("docs[%d].Id = %q; want %q", i, docs[i].Id, id)
		}
	}
}

func TestRedisDocumentStore_ListHonorsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		doc := sampleDoc(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
		if err := s.SaveDocument(ctx, doc); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}
	}

	docs, err := s.ListDocuments(ctx, 2)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("got %d documents; want 2", len(docs))
	}
}

func TestInMemoryDocumentStore_ListNewestFirst(t *testing.T) {
	s := store.InitInMemoryDocumentStore()
	ctx := context.Background()
	base := time.Now().UTC()

	for i, id := range []string{"old", "new"} {
		if err := s.SaveDocument(ctx, sampleDoc(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}
	}

	docs, err := s.ListDocuments(ctx, 100)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 2 || docs[0].Id != "new" {
		t.Errorf("unexpected order: %+v", docs)
	}
}
