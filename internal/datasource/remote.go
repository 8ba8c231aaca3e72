package datasource

import (
	"context"
	"errors"
	"net/url"

	"github.com/zechsoft/new-trust-sub003/internal/upstream"
)

// Remote maps list operations onto a REST collection of the upstream
// backend: GET path, POST path, PUT path/:id, DELETE path/:id.
type Remote[T any] struct {
	client *upstream.Client
	path   string
	id     func(T) string
}

func NewRemote[T any](client *upstream.Client, path string, id func(T) string) *Remote[T] {
	return &Remote[T]{client: client, path: path, id: id}
}

func (r *Remote[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.GetJSON(ctx, r.path, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Remote[T]) Create(ctx context.Context, item T) (T, error) {
	var out T
	if err := r.client.PostJSON(ctx, r.path, item, &out); err != nil {
		return keepOnEmpty(item, out, err)
	}
	if r.id(out) == "" {
		return item, nil
	}
	return out, nil
}

func (r *Remote[T]) Update(ctx context.Context, item T) (T, error) {
	var out T
	if err := r.client.PutJSON(ctx, r.itemPath(r.id(item)), item, &out); err != nil {
		return keepOnEmpty(item, out, err)
	}
	if r.id(out) == "" {
		return item, nil
	}
	return out, nil
}

func (r *Remote[T]) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.itemPath(id))
}

func (r *Remote[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// keepOnEmpty treats a successful call without a body as an echo of the
// submitted entity.
func keepOnEmpty[T any](item, out T, err error) (T, error) {
	if errors.Is(err, upstream.ErrEmptyBody) {
		return item, nil
	}
	return out, err
}
