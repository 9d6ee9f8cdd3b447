package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adarsh/schoolsite/internal/app/controllers"
	"github.com/adarsh/schoolsite/internal/app/models"
	"github.com/adarsh/schoolsite/internal/app/routes"
	"github.com/adarsh/schoolsite/internal/app/services"
	"github.com/adarsh/schoolsite/internal/pkg/apperrors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var errStoreDown = errors.New("store unavailable")

// fakeStore is an in-memory services.Store with call counters, so tests can
// assert which store primitives a request actually touched. finalize stamps
// server-generated fields (id, creation time) onto a stored record.
type fakeStore[T any] struct {
	mu       sync.Mutex
	records  map[int64]T
	nextID   int64
	finalize func(T, int64) T

	failAll    bool
	failCreate bool

	findByIDCalls int
	findAllCalls  int
	createCalls   int
	deleteCalls   int
}

func newFakeStore[T any](finalize func(T, int64) T) *fakeStore[T] {
	return &fakeStore[T]{
		records:  make(map[int64]T),
		nextID:   1,
		finalize: finalize,
	}
}

func (s *fakeStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findByIDCalls++
	if s.failAll {
		return nil, errStoreDown
	}
	record, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &record, nil
}

func (s *fakeStore[T]) FindAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findAllCalls++
	if s.failAll {
		return nil, errStoreDown
	}

	ids := make([]int64, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]T, 0, len(ids))
	for _, id := range ids {
		items = append(items, s.records[id])
	}
	return items, nil
}

func (s *fakeStore[T]) Create(ctx context.Context, record *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	if s.failAll || s.failCreate {
		return nil, errStoreDown
	}

	id := s.nextID
	s.nextID++
	created := s.finalize(*record, id)
	s.records[id] = created
	return &created, nil
}

func (s *fakeStore[T]) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++
	if s.failAll {
		return errStoreDown
	}
	if _, ok := s.records[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *fakeStore[T]) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// fakeUploader returns a canned URL and counts invocations
type fakeUploader struct {
	mu    sync.Mutex
	url   string
	err   error
	calls int
}

func (u *fakeUploader) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return fmt.Sprintf("%s/%s/%s", u.url, folder, filename), nil
}

func (u *fakeUploader) uploadCalls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}

// testEnv wires fake stores and a fake uploader behind a real router
type testEnv struct {
	router   *gin.Engine
	news     *fakeStore[models.News]
	faculty  *fakeStore[models.Faculty]
	gallery  *fakeStore[models.Gallery]
	uploader *fakeUploader
}

func newTestEnv() *testEnv {
	news := newFakeStore(func(n models.News, id int64) models.News {
		n.ID = id
		n.CreatedAt = time.Now()
		return n
	})
	faculty := newFakeStore(func(f models.Faculty, id int64) models.Faculty {
		f.ID = id
		return f
	})
	gallery := newFakeStore(func(g models.Gallery, id int64) models.Gallery {
		g.ID = id
		g.CreatedAt = time.Now()
		return g
	})

	uploader := &fakeUploader{url: "https://media.example.com"}

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewNewsController(services.NewEntityService[models.News](news)),
		controllers.NewFacultyController(services.NewEntityService[models.Faculty](faculty), uploader),
		controllers.NewGalleryController(services.NewEntityService[models.Gallery](gallery), uploader),
	)

	return &testEnv{
		router:   router,
		news:     news,
		faculty:  faculty,
		gallery:  gallery,
		uploader: uploader,
	}
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// multipartBody builds a multipart form, optionally with a photo file part
func multipartBody(t *testing.T, fields map[string]string, photo []byte, filename string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}

	if photo != nil {
		part, err := writer.CreateFormFile("photo", filename)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(photo); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	return &buf, writer.FormDataContentType()
}
