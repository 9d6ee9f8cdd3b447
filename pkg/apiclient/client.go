// Package apiclient is a typed client for the school site API. It is the
// programmatic counterpart of the site's forms and lists: fetch a list, add
// a record, delete a record by id.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// News mirrors a news entry as returned by the API
type News struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

// Faculty mirrors a faculty member as returned by the API
type Faculty struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	Qualification   string `json:"qualification"`
	Experience      string `json:"experience"`
	Specializations string `json:"specializations"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Department      string `json:"department"`
	Photo           string `json:"photo"`
}

// GalleryImage mirrors a gallery entry as returned by the API
type GalleryImage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Photo       string    `json:"photo"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AddNewsInput is the payload for AddNews
type AddNewsInput struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Featured bool   `json:"featured"`
}

// AddFacultyInput is the form payload for AddFaculty; the photo travels
// separately as a file part.
type AddFacultyInput struct {
	Name            string
	Position        string
	Qualification   string
	Experience      string
	Specializations string
	Email           string
	Phone           string
	Department      string
}

// AddGalleryInput is the form payload for AddGallery
type AddGalleryInput struct {
	Title       string
	Description string
}

// APIError is a non-2xx response decoded into its message
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// Client talks to one deployment of the API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient creates a client using a caller-supplied http.Client
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ListNews fetches all news entries
func (c *Client) ListNews(ctx context.Context) ([]News, error) {
	var envelope struct {
		NewsData []News `json:"newsData"`
	}
	if err := c.getJSON(ctx, "/api/news", &envelope); err != nil {
		return nil, err
	}
	return envelope.NewsData, nil
}

// AddNews creates a news entry and returns the stored record
func (c *Client) AddNews(ctx context.Context, input AddNewsInput) (*News, error) {
	var envelope struct {
		Data struct {
			AddNews News `json:"addNews"`
		} `json:"data"`
	}
	if err := c.postJSON(ctx, "/api/news/add", input, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.AddNews, nil
}

// DeleteNews deletes a news entry by id
func (c *Client) DeleteNews(ctx context.Context, id int64) error {
	return c.deleteByID(ctx, "/api/news/delete", id)
}

// ListFaculty fetches all faculty members
func (c *Client) ListFaculty(ctx context.Context) ([]Faculty, error) {
	var envelope struct {
		FacultyData []Faculty `json:"facultyData"`
	}
	if err := c.getJSON(ctx, "/api/faculty", &envelope); err != nil {
		return nil, err
	}
	return envelope.FacultyData, nil
}

// AddFaculty creates a faculty member with the attached photo and returns
// the stored record, photo URL included.
func (c *Client) AddFaculty(ctx context.Context, input AddFacultyInput, photo []byte, filename string) (*Faculty, error) {
	fields := map[string]string{
		"name":            input.Name,
		"position":        input.Position,
		"qualification":   input.Qualification,
		"experience":      input.Experience,
		"specializations": input.Specializations,
		"email":           input.Email,
		"phone":           input.Phone,
		"department":      input.Department,
	}

	var envelope struct {
		FacultyData Faculty `json:"facultyData"`
	}
	if err := c.postMultipart(ctx, "/api/faculty/add", fields, photo, filename, &envelope); err != nil {
		return nil, err
	}
	return &envelope.FacultyData, nil
}

// DeleteFaculty deletes a faculty member by id
func (c *Client) DeleteFaculty(ctx context.Context, id int64) error {
	return c.deleteByID(ctx, "/api/faculty/delete", id)
}

// ListGallery fetches all gallery images
func (c *Client) ListGallery(ctx context.Context) ([]GalleryImage, error) {
	var envelope struct {
		GalleryData []GalleryImage `json:"galleryData"`
	}
	if err := c.getJSON(ctx, "/api/gallery", &envelope); err != nil {
		return nil, err
	}
	return envelope.GalleryData, nil
}

// AddGallery creates a gallery image with the attached photo
func (c *Client) AddGallery(ctx context.Context, input AddGalleryInput, photo []byte, filename string) (*GalleryImage, error) {
	fields := map[string]string{
		"title":       input.Title,
		"description": input.Description,
	}

	var envelope struct {
		GalleryData GalleryImage `json:"galleryData"`
	}
	if err := c.postMultipart(ctx, "/api/gallery/add", fields, photo, filename, &envelope); err != nil {
		return nil, err
	}
	return &envelope.GalleryData, nil
}

// DeleteGallery deletes a gallery image by id
func (c *Client) DeleteGallery(ctx context.Context, id int64) error {
	return c.deleteByID(ctx, "/api/gallery/delete", id)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, photo []byte, filename string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}

	part, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(photo); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) deleteByID(ctx context.Context, pathPrefix string, id int64) error {
	payload, err := json.Marshal(map[string]int64{"id": id})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s%s/%d", c.baseURL, pathPrefix, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts whichever of the message/error fields the failing
// endpoint used.
func errorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
