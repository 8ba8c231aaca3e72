package listresource

import (
	"context"
	"strings"
)

// Draft is an editable copy of an entity. Changes to Value never touch the
// list until Save succeeds.
type Draft[T any] struct {
	Value T

	r     *Resource[T]
	isNew bool
	done  bool
}

// Open clones the entity with the given id into a draft.
func (r *Resource[T]) Open(id string) (*Draft[T], error) {
	if strings.TrimSpace(id) == "" {
		r.log.Warn().Msg("open without identifier")
		return nil, ErrMissingID
	}
	item, ok := r.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &Draft[T]{Value: item, r: r}, nil
}

// NewDraft starts a draft for an entity that does not exist yet.
func (r *Resource[T]) NewDraft(v T) *Draft[T] {
	return &Draft[T]{Value: v, r: r, isNew: true}
}

func (d *Draft[T]) IsNew() bool { return d.isNew }

// Cancel discards the draft.
func (d *Draft[T]) Cancel() { d.done = true }

// Save validates the draft, sends it to the data source and, on success,
// reconciles the list by identity and recomputes the statistics. On failure
// the list is left untouched and the draft stays open for another attempt.
func (d *Draft[T]) Save(ctx context.Context) (T, error) {
	var zero T
	if d.done {
		return zero, ErrDraftClosed
	}
	r := d.r
	if r.spec.ReadOnly {
		return zero, ErrReadOnly
	}

	r.spec.normalize(&d.Value)
	if r.spec.Validate != nil {
		if err := r.spec.Validate(d.Value); err != nil {
			return zero, err
		}
	}

	var (
		saved T
		err   error
	)
	if d.isNew {
		saved, err = r.src.Create(ctx, d.Value)
	} else {
		saved, err = r.src.Update(ctx, d.Value)
	}
	if err != nil {
		r.log.Error().Err(err).Bool("create", d.isNew).Msg("save failed")
		return zero, err
	}
	r.spec.normalize(&saved)

	r.mu.Lock()
	if i := r.indexOf(r.spec.ID(saved)); i >= 0 {
		r.items[i] = saved
	} else {
		r.items = append(r.items, saved)
	}
	r.stats = r.spec.summarize(r.items)
	r.mu.Unlock()

	d.done = true
	return r.spec.clone(saved), nil
}

// Create is NewDraft followed by Save.
func (r *Resource[T]) Create(ctx context.Context, v T) (T, error) {
	return r.NewDraft(v).Save(ctx)
}

// Mutate opens the entity, applies fn to the draft and saves it. Concurrent
// Mutate and Delete calls on one resource run one at a time.
func (r *Resource[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var zero T
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	d, err := r.Open(id)
	if err != nil {
		return zero, err
	}
	if err := fn(&d.Value); err != nil {
		d.Cancel()
		return zero, err
	}
	return d.Save(ctx)
}

// SetStatus assigns a status label. Any label in Spec.Statuses may follow any
// other; there is no transition table.
func (r *Resource[T]) SetStatus(ctx context.Context, id, status string) (T, error) {
	var zero T
	if r.spec.SetStatus == nil {
		return zero, ErrReadOnly
	}
	if !r.spec.HasStatus(status) {
		return zero, ErrInvalidStatus
	}
	return r.Mutate(ctx, id, func(v *T) error {
		r.spec.SetStatus(v, status)
		return nil
	})
}

// ConfirmFunc is asked before an entity is deleted. Returning false aborts.
type ConfirmFunc[T any] func(T) bool

// Delete removes the entity with the given id after confirm approves it and
// reports whether anything was removed. An id that is not in the list is a
// no-op that returns false.
func (r *Resource[T]) Delete(ctx context.Context, id string, confirm ConfirmFunc[T]) (bool, error) {
	if strings.TrimSpace(id) == "" {
		r.log.Warn().Msg("delete without identifier")
		return false, ErrMissingID
	}
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	item, ok := r.Find(id)
	if !ok {
		r.log.Debug().Str("id", id).Msg("delete of unknown id ignored")
		return false, nil
	}
	if r.spec.ReadOnly {
		return false, ErrReadOnly
	}
	if confirm == nil || !confirm(item) {
		return false, ErrNotConfirmed
	}

	if err := r.src.Delete(ctx, id); err != nil {
		r.log.Error().Err(err).Str("id", id).Msg("delete failed")
		return false, err
	}

	r.mu.Lock()
	if i := r.indexOf(id); i >= 0 {
		r.items = append(r.items[:i:i], r.items[i+1:]...)
	}
	r.stats = r.spec.summarize(r.items)
	r.mu.Unlock()
	return true, nil
}

// Confirmed approves every delete. Callers use it once the user has
// already confirmed out of band.
func Confirmed[T any](T) bool { return true }
