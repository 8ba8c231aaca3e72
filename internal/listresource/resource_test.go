package listresource

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeSource struct {
	mu        sync.Mutex
	items     []item
	listErr   error
	saveErr   error
	deleted   []string
	listGate  chan struct{}
	listCalls int

	updateDelay time.Duration
}

func (f *fakeSource) List(ctx context.Context) ([]item, error) {
	f.mu.Lock()
	f.listCalls++
	gate := f.listGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeSource) Create(ctx context.Context, it item) (item, error) {
	if f.saveErr != nil {
		return item{}, f.saveErr
	}
	if it.ID == "" {
		it.ID = "new"
	}
	return it, nil
}

func (f *fakeSource) Update(ctx context.Context, it item) (item, error) {
	if f.updateDelay > 0 {
		time.Sleep(f.updateDelay)
	}
	if f.saveErr != nil {
		return item{}, f.saveErr
	}
	return it, nil
}

func (f *fakeSource) Delete(ctx context.Context, id string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func loaded(t *testing.T, src *fakeSource) *Resource[item] {
	t.Helper()
	r := New[item](src, itemSpec(), zerolog.Nop())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return r
}

func TestLoadComputesStats(t *testing.T) {
	r := loaded(t, &fakeSource{items: fixtures()})

	stats := r.Stats()
	if stats["total"] != 4 {
		t.Fatalf("stats[total] = %v, want 4", stats["total"])
	}
	if stats["resolved"] != 2 {
		t.Fatalf("stats[resolved] = %v, want 2", stats["resolved"])
	}
	if stats["score_sum"] != 18 {
		t.Fatalf("stats[score_sum] = %v, want 18", stats["score_sum"])
	}
	if state, _ := r.State(); state != StateReady {
		t.Fatalf("State() = %q, want %q", state, StateReady)
	}
}

func TestLoadFailureKeepsPreviousItems(t *testing.T) {
	src := &fakeSource{items: fixtures()}
	r := loaded(t, src)

	src.listErr = errors.New("connection refused")
	if err := r.Load(context.Background()); err == nil {
		t.Fatal("Load() error = nil, want failure")
	}

	page := r.View(Query{})
	if page.State != StateFailed || page.Error == "" {
		t.Fatalf("View() state = %q error = %q, want failed with message", page.State, page.Error)
	}
	if page.Total != 4 {
		t.Fatalf("View() total = %d, want previous 4 items", page.Total)
	}
}

func TestLoadDiscardsSupersededResponse(t *testing.T) {
	gate := make(chan struct{})
	src := &fakeSource{items: fixtures(), listGate: gate}
	r := New[item](src, itemSpec(), zerolog.Nop())

	done := make(chan error, 1)
	go func() { done <- r.Load(context.Background()) }()

	// Wait for the first load to be in flight, then start a second one.
	for {
		src.mu.Lock()
		calls := src.listCalls
		src.mu.Unlock()
		if calls == 1 {
			break
		}
	}
	src.mu.Lock()
	src.listGate = nil
	src.items = fixtures()[:1]
	src.mu.Unlock()

	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	close(gate)

	if err := <-done; !errors.Is(err, ErrStale) {
		t.Fatalf("first Load() error = %v, want ErrStale", err)
	}
	if got := len(r.Items()); got != 1 {
		t.Fatalf("len(Items()) = %d, want 1 from the newer load", got)
	}
}

func TestLoadAfterCloseIsRejected(t *testing.T) {
	r := New[item](&fakeSource{items: fixtures()}, itemSpec(), zerolog.Nop())
	r.Close()
	if err := r.Load(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("Load() error = %v, want ErrClosed", err)
	}
}

func TestLoadWithCancelledContext(t *testing.T) {
	r := New[item](&fakeSource{items: fixtures()}, itemSpec(), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Load(ctx); !errors.Is(err, ErrStale) {
		t.Fatalf("Load() error = %v, want ErrStale", err)
	}
	if state, _ := r.State(); state != StateIdle {
		t.Fatalf("State() = %q, want %q", state, StateIdle)
	}
}

func TestDraftSaveReplacesByIdentity(t *testing.T) {
	r := loaded(t, &fakeSource{items: fixtures()})

	d, err := r.Open("1")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	d.Value.Score = 10
	d.Value.Status = "resolved"

	if before, _ := r.Find("1"); before.Score != 3 {
		t.Fatalf("draft edit leaked into list: score = %d", before.Score)
	}

	if _, err := d.Save(context.Background()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	after, _ := r.Find("1")
	if after.Score != 10 {
		t.Fatalf("score after save = %d, want 10", after.Score)
	}
	if got := r.Stats()["resolved"]; got != 3 {
		t.Fatalf("stats[resolved] = %v, want 3", got)
	}
	if got := len(r.Items()); got != 4 {
		t.Fatalf("len(Items()) = %d, want 4", got)
	}
	if _, err := d.Save(context.Background()); !errors.Is(err, ErrDraftClosed) {
		t.Fatalf("second Save() error = %v, want ErrDraftClosed", err)
	}
}

func TestDraftSaveFailureLeavesList(t *testing.T) {
	src := &fakeSource{items: fixtures()}
	r := loaded(t, src)
	src.saveErr = errors.New("500 Internal Server Error")

	d, _ := r.Open("2")
	d.Value.Name = "Renamed"
	if _, err := d.Save(context.Background()); err == nil {
		t.Fatal("Save() error = nil, want failure")
	}
	if got, _ := r.Find("2"); got.Name != "School books" {
		t.Fatalf("name after failed save = %q, want unchanged", got.Name)
	}
}

func TestDraftValidation(t *testing.T) {
	r := loaded(t, &fakeSource{items: fixtures()})

	d, _ := r.Open("2")
	d.Value.Name = " "
	_, err := d.Save(context.Background())
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "name" {
		t.Fatalf("Save() error = %v, want validation error on name", err)
	}
}

func TestCreateAppends(t *testing.T) {
	r := loaded(t, &fakeSource{items: fixtures()})

	created, err := r.Create(context.Background(), item{Name: "Blankets", Status: "open", Score: 2})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID != "new" {
		t.Fatalf("created ID = %q, want %q", created.ID, "new")
	}
	if got := r.Stats()["total"]; got != 5 {
		t.Fatalf("stats[total] = %v, want 5", got)
	}
}

func TestOpenGuards(t *testing.T) {
	r := loaded(t, &fakeSource{items: fixtures()})
	if _, err := r.Open(""); !errors.Is(err, ErrMissingID) {
		t.Fatalf("Open(\"\") error = %v, want ErrMissingID", err)
	}
	if _, err := r.Open("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Open(nope) error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	src := &fakeSource{items: fixtures()}
	r := loaded(t, src)

	if _, err := r.Delete(context.Background(), "3", nil); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("Delete() without confirm error = %v, want ErrNotConfirmed", err)
	}
	if _, err := r.Delete(context.Background(), "3", func(item) bool { return false }); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("Delete() declined error = %v, want ErrNotConfirmed", err)
	}
	if len(src.deleted) != 0 {
		t.Fatalf("source received delete before confirmation: %v", src.deleted)
	}

	removed, err := r.Delete(context.Background(), "3", Confirmed[item])
	if err != nil || !removed {
		t.Fatalf("Delete() = %v, %v, want true, nil", removed, err)
	}
	if got := ids(r.Items()); !equalIDs(got, []string{"1", "2", "4"}) {
		t.Fatalf("Items() after delete = %v, want [1 2 4]", got)
	}
	if got := r.Stats()["resolved"]; got != 1 {
		t.Fatalf("stats[resolved] = %v, want 1", got)
	}

	removed, err = r.Delete(context.Background(), "missing", Confirmed[item])
	if err != nil || removed {
		t.Fatalf("Delete(missing) = %v, %v, want false, nil", removed, err)
	}
	if got := len(r.Items()); got != 3 {
		t.Fatalf("len(Items()) after no-op delete = %d, want 3", got)
	}
	if len(src.deleted) != 1 {
		t.Fatalf("source deletes = %v, want exactly one", src.deleted)
	}
	if _, err := r.Delete(context.Background(), "", Confirmed[item]); !errors.Is(err, ErrMissingID) {
		t.Fatalf("Delete(\"\") error = %v, want ErrMissingID", err)
	}
}

func TestConcurrentMutateKeepsEveryChange(t *testing.T) {
	src := &fakeSource{items: fixtures(), updateDelay: 2 * time.Millisecond}
	r := loaded(t, src)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Mutate(context.Background(), "1", func(v *item) error {
				v.Score++
				return nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Mutate() error = %v", err)
		}
	}

	got, ok := r.Find("1")
	if !ok {
		t.Fatal("Find(1) = not found")
	}
	if got.Score != 3+n {
		t.Fatalf("Score after %d concurrent increments = %d, want %d", n, got.Score, 3+n)
	}
}

func TestSetStatusAnyToAny(t *testing.T) {
	r := loaded(t, &fakeSource{items: fixtures()})

	for _, status := range []string{"resolved", "open", "urgent", "pending", "open"} {
		got, err := r.SetStatus(context.Background(), "2", status)
		if err != nil {
			t.Fatalf("SetStatus(%q) error = %v", status, err)
		}
		if got.Status != status {
			t.Fatalf("SetStatus(%q) status = %q", status, got.Status)
		}
	}
	if _, err := r.SetStatus(context.Background(), "2", "closed"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("SetStatus(closed) error = %v, want ErrInvalidStatus", err)
	}
}

func TestReadOnlySpec(t *testing.T) {
	spec := itemSpec()
	spec.ReadOnly = true
	r := New[item](&fakeSource{items: fixtures()}, spec, zerolog.Nop())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := r.Create(context.Background(), item{Name: "x"}); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("Create() error = %v, want ErrReadOnly", err)
	}
	if _, err := r.Delete(context.Background(), "1", Confirmed[item]); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("Delete() error = %v, want ErrReadOnly", err)
	}
}
