package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarsh/schoolsite/internal/app/models/dto"
)

var galleryForm = map[string]string{
	"title":       "Sports Day",
	"description": "Annual sports day 2025",
}

func TestListGallery_EmptyStore(t *testing.T) {
	env := newTestEnv()

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/gallery", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.GalleryListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sucess fetching the gallery data", resp.Message)
	assert.Empty(t, resp.GalleryData)
}

func TestListGallery_StoreErrorReturns500(t *testing.T) {
	env := newTestEnv()
	env.gallery.failAll = true

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/gallery", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"error fetching gallery data"}`, rec.Body.String())
}

func TestAddGallery_NoFileShortCircuits(t *testing.T) {
	env := newTestEnv()

	body, contentType := multipartBody(t, galleryForm, nil, "")
	req := httptest.NewRequest(http.MethodPost, "/api/gallery/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := env.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No image uploaded"}`, rec.Body.String())

	assert.Zero(t, env.uploader.uploadCalls())
	assert.Zero(t, env.gallery.createCalls)
	assert.Zero(t, env.gallery.count())
}

func TestAddGallery_RoundTrip(t *testing.T) {
	env := newTestEnv()

	body, contentType := multipartBody(t, galleryForm, []byte("jpeg-bytes"), "sports.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/gallery/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := env.do(req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.AddGalleryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "gallery added successfully", resp.Message)

	created := resp.GalleryData
	assert.Positive(t, created.ID)
	assert.Equal(t, "Sports Day", created.Title)
	assert.Equal(t, "Annual sports day 2025", created.Description)
	assert.Equal(t, "https://media.example.com/gallery/sports.jpg", created.Photo)
	assert.False(t, created.CreatedAt.IsZero())

	listRec := env.do(httptest.NewRequest(http.MethodGet, "/api/gallery", nil))
	var list dto.GalleryListResponse
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &list))
	require.Len(t, list.GalleryData, 1)
	assert.Equal(t, created, list.GalleryData[0])
}

func TestDeleteGallery_Flow(t *testing.T) {
	env := newTestEnv()

	body, contentType := multipartBody(t, galleryForm, []byte("img"), "a.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/gallery/add", body)
	req.Header.Set("Content-Type", contentType)
	require.Equal(t, http.StatusCreated, env.do(req).Code)

	rec := env.do(postJSON(t, "/api/gallery/delete/1", dto.DeleteRequest{ID: 1}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"gallery data deleted success."}`, rec.Body.String())

	again := env.do(postJSON(t, "/api/gallery/delete/1", dto.DeleteRequest{ID: 1}))
	require.Equal(t, http.StatusBadRequest, again.Code)
	assert.JSONEq(t, `{"message":"failed to delete data."}`, again.Body.String())
	assert.Zero(t, env.gallery.count())
}
