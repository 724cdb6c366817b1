package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cortesec-admin/internal/shared/apperror"
)

// maxListPages bounds how many "next" links a full-list fetch follows.
const maxListPages = 50

// Page is the paginated list shape of the backend. Bare is set when the
// backend answered with a plain array, which means it ignored paging and
// filter params.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
	Bare     bool    `json:"-"`
}

// DecodeList accepts either a bare JSON array or a Page object.
func DecodeList[T any](raw json.RawMessage) (Page[T], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Page[T]{Results: []T{}}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Page[T]{}, err
		}
		if items == nil {
			items = []T{}
		}
		return Page[T]{Count: int64(len(items)), Results: items, Bare: true}, nil
	}

	var page Page[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return Page[T]{}, err
	}
	if page.Results == nil {
		page.Results = []T{}
	}
	return page, nil
}

// Resource is a typed wrapper over one backend collection, e.g.
// /api/roles/tipos-rol/. IDs are appended as "{path}{id}/".
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](client *Client, path string) *Resource[T] {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return &Resource[T]{client: client, path: path}
}

func (r *Resource[T]) Path() string {
	return r.path
}

// ItemPath returns the detail path for id, with optional sub-segments.
func (r *Resource[T]) ItemPath(id string, segments ...string) string {
	p := r.path + url.PathEscape(id) + "/"
	for _, s := range segments {
		p += strings.Trim(s, "/") + "/"
	}
	return p
}

// List fetches the whole collection, following "next" links.
func (r *Resource[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	page, err := r.ListPage(ctx, query)
	if err != nil {
		return nil, err
	}

	items := page.Results
	next := page.Next
	for i := 1; next != nil && *next != "" && i < maxListPages; i++ {
		var raw json.RawMessage
		if err := r.client.Get(ctx, *next, nil, &raw); err != nil {
			return nil, err
		}
		p, err := DecodeList[T](raw)
		if err != nil {
			return nil, decodeErr(err)
		}
		items = append(items, p.Results...)
		next = p.Next
	}
	return items, nil
}

// ListPage fetches a single page as served by the backend.
func (r *Resource[T]) ListPage(ctx context.Context, query url.Values) (Page[T], error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, r.path, query, &raw); err != nil {
		return Page[T]{}, err
	}
	page, err := DecodeList[T](raw)
	if err != nil {
		return Page[T]{}, decodeErr(err)
	}
	return page, nil
}

func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.client.Get(ctx, r.ItemPath(id), nil, &out)
	return out, err
}

func (r *Resource[T]) Create(ctx context.Context, body any) (T, error) {
	var out T
	err := r.client.Post(ctx, r.path, body, &out)
	return out, err
}

func (r *Resource[T]) Update(ctx context.Context, id string, body any) (T, error) {
	var out T
	err := r.client.Put(ctx, r.ItemPath(id), body, &out)
	return out, err
}

func (r *Resource[T]) Patch(ctx context.Context, id string, body any) (T, error) {
	var out T
	err := r.client.Patch(ctx, r.ItemPath(id), body, &out)
	return out, err
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.ItemPath(id))
}

// Action posts to a detail action such as {id}/aprobar/.
func (r *Resource[T]) Action(ctx context.Context, id, action string, body any) (T, error) {
	var out T
	if body == nil {
		body = map[string]any{}
	}
	err := r.client.Post(ctx, r.ItemPath(id, action), body, &out)
	return out, err
}

// CollectionGet fetches a collection-level sub path such as jerarquia/.
func (r *Resource[T]) CollectionGet(ctx context.Context, sub string, query url.Values, out any) error {
	return r.client.Get(ctx, r.path+strings.Trim(sub, "/")+"/", query, out)
}

func decodeErr(err error) error {
	return apperror.Wrap(fmt.Errorf("decode list: %w", err), apperror.CodeBackendError, "Respuesta inválida del servidor", http.StatusBadGateway)
}
