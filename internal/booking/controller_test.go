package booking

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/iliyamo/exhibition-visit-booking/internal/blobstore"
	"github.com/iliyamo/exhibition-visit-booking/internal/calendar"
	"github.com/iliyamo/exhibition-visit-booking/internal/store"
)

func newTestController() (*Controller, *store.BookingStore, *AdminSession) {
	st := store.New(blobstore.NewMemory())
	admin := NewAdminSession("0921")
	return NewController(st, admin), st, admin
}

func TestCreateValidation(t *testing.T) {
	ctrl, st, _ := newTestController()
	ctx := context.Background()

	cases := []struct {
		name                          string
		date, time, visitor, password string
		want                          error
	}{
		{"empty name", "2025-11-29", "10:00", "", "1234", ErrMissingName},
		{"whitespace name", "2025-11-29", "10:00", "   ", "1234", ErrMissingName},
		{"empty password", "2025-11-29", "10:00", "Yebin", "", ErrMissingPassword},
		{"off-calendar date", "2025-12-25", "10:00", "Yebin", "1234", ErrUnknownSlot},
		{"off-calendar time", "2025-11-29", "09:00", "Yebin", "1234", ErrUnknownSlot},
	}
	for _, tc := range cases {
		if _, err := ctrl.Create(ctx, tc.date, tc.time, tc.visitor, "", tc.password); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
	if got := st.List(); len(got) != 0 {
		t.Fatalf("rejected creates must not touch the store, got %d bookings", len(got))
	}
}

func TestCreateTrimsAndAssignsUniqueIDs(t *testing.T) {
	ctrl, _, _ := newTestController()
	ctx := context.Background()

	a, err := ctrl.Create(ctx, "2025-11-29", "10:00", "  Yebin ", " hello ", "1234")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Name != "Yebin" || a.Message != "hello" {
		t.Fatalf("name/message not trimmed: %+v", a)
	}
	b, err := ctrl.Create(ctx, "2025-11-29", "10:30", "Hyejung", "", "5678")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("ids must be unique and non-empty: %q vs %q", a.ID, b.ID)
	}
}

func TestCapacityInvariant(t *testing.T) {
	ctrl, st, _ := newTestController()
	ctx := context.Background()

	// Scenario from the exhibition: three friends pick the same slot.
	for i := 0; i < 3; i++ {
		if _, err := ctrl.Create(ctx, "2025-11-29", "10:00", "Yebin", "", "1234"); err != nil {
			t.Fatalf("create %d: %v", i+1, err)
		}
	}
	before := st.List()
	if _, err := ctrl.Create(ctx, "2025-11-29", "10:00", "Fourth", "", "1234"); !errors.Is(err, ErrSlotFull) {
		t.Fatalf("fourth create must fail with ErrSlotFull, got %v", err)
	}
	if !reflect.DeepEqual(st.List(), before) {
		t.Fatal("rejected create mutated the store")
	}
	if n := st.CountFor("2025-11-29", "10:00"); n != 3 {
		t.Fatalf("slot must still report 3 bookings, got %d", n)
	}
	// A different slot on the same day is unaffected.
	if _, err := ctrl.Create(ctx, "2025-11-29", "10:30", "Fourth", "", "1234"); err != nil {
		t.Fatalf("neighboring slot rejected: %v", err)
	}
}

func TestConcurrentCreatesRespectCapacity(t *testing.T) {
	ctrl, st, _ := newTestController()
	ctx := context.Background()

	// All attempts target the same slot and are released together, so
	// the occupancy check and the append race if they are not one
	// atomic operation.
	const attempts = 16
	start := make(chan struct{})
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := ctrl.Create(ctx, "2025-11-29", "10:00", "Guest", "", "pw")
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	created, refused := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrSlotFull):
			refused++
		default:
			t.Fatalf("unexpected create error: %v", err)
		}
	}
	if created != calendar.MaxBookingsPerSlot || refused != attempts-calendar.MaxBookingsPerSlot {
		t.Fatalf("created %d, refused %d, want %d and %d",
			created, refused, calendar.MaxBookingsPerSlot, attempts-calendar.MaxBookingsPerSlot)
	}
	if n := st.CountFor("2025-11-29", "10:00"); n != calendar.MaxBookingsPerSlot {
		t.Fatalf("slot holds %d bookings, want %d", n, calendar.MaxBookingsPerSlot)
	}
}

func TestRevealRequiresExactPassword(t *testing.T) {
	ctrl, _, _ := newTestController()
	ctx := context.Background()
	b, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "Yebin", "secret note", "Pw12")

	if _, err := ctrl.Reveal(b.ID, "pw12"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("comparison must be case-sensitive, got %v", err)
	}
	if _, err := ctrl.Reveal(b.ID, ""); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("empty attempt must mismatch, got %v", err)
	}
	if _, err := ctrl.Reveal("missing", "Pw12"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("unknown id: got %v", err)
	}
	got, err := ctrl.Reveal(b.ID, "Pw12")
	if err != nil {
		t.Fatalf("reveal with correct password: %v", err)
	}
	if got.Message != "secret note" {
		t.Fatalf("message not revealed: %+v", got)
	}
}

func TestUpdatePasswordGate(t *testing.T) {
	ctrl, st, _ := newTestController()
	ctx := context.Background()
	b, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "Yebin", "note", "1234")
	before := st.List()

	if _, err := ctrl.Update(ctx, b.ID, "Mallory", "stolen", "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("wrong password must be rejected, got %v", err)
	}
	if !reflect.DeepEqual(st.List(), before) {
		t.Fatal("rejected update mutated the store")
	}

	updated, err := ctrl.Update(ctx, b.ID, "Yebin Kim", "see you there", "1234")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != b.ID || updated.Date != b.Date || updated.Time != b.Time || updated.Password != b.Password {
		t.Fatalf("update touched immutable fields: %+v", updated)
	}
	if updated.Name != "Yebin Kim" || updated.Message != "see you there" {
		t.Fatalf("update did not apply: %+v", updated)
	}
}

func TestUpdateValidatesName(t *testing.T) {
	ctrl, _, _ := newTestController()
	ctx := context.Background()
	b, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "Yebin", "", "1234")
	if _, err := ctrl.Update(ctx, b.ID, "  ", "msg", "1234"); !errors.Is(err, ErrMissingName) {
		t.Fatalf("blank name on update: got %v", err)
	}
}

func TestAdminBypassOnRevealAndUpdate(t *testing.T) {
	ctrl, _, admin := newTestController()
	ctx := context.Background()
	b, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "Yebin", "for admin eyes", "1234")

	if !admin.Login("0921") {
		t.Fatal("admin login failed")
	}
	got, err := ctrl.Reveal(b.ID, "")
	if err != nil || got.Message != "for admin eyes" {
		t.Fatalf("admin reveal without password: %v, %+v", err, got)
	}
	if _, err := ctrl.Update(ctx, b.ID, "Corrected", "", ""); err != nil {
		t.Fatalf("admin update without password: %v", err)
	}

	admin.Logout()
	if _, err := ctrl.Update(ctx, b.ID, "Sneaky", "", ""); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("bypass must end with the session, got %v", err)
	}
}

func TestTwoPhaseDelete(t *testing.T) {
	ctrl, st, _ := newTestController()
	ctx := context.Background()
	b, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "Yebin", "note", "1234")
	before := st.List()

	// Wrong password: rejected immediately, nothing staged.
	if err := ctrl.StageDelete(b.ID, "0000"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("stage with wrong password: got %v", err)
	}
	if _, ok := ctrl.Staged(); ok {
		t.Fatal("mismatch must not stage a delete")
	}
	if _, err := ctrl.ConfirmDelete(ctx); !errors.Is(err, ErrNoStagedDelete) {
		t.Fatalf("confirm without stage: got %v", err)
	}

	// Stage then cancel: store identical to before staging.
	if err := ctrl.StageDelete(b.ID, "1234"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	ctrl.CancelDelete(b.ID)
	if !reflect.DeepEqual(st.List(), before) {
		t.Fatal("cancelled delete left a side effect")
	}
	if _, err := ctrl.ConfirmDelete(ctx); !errors.Is(err, ErrNoStagedDelete) {
		t.Fatalf("confirm after cancel: got %v", err)
	}

	// Stage then confirm: booking removed.
	if err := ctrl.StageDelete(b.ID, "1234"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	removed, err := ctrl.ConfirmDelete(ctx)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if removed.ID != b.ID {
		t.Fatalf("confirmed the wrong booking: %+v", removed)
	}
	if got := st.List(); len(got) != 0 {
		t.Fatalf("booking still present after confirmed delete: %+v", got)
	}
	// The stage is consumed by confirmation.
	if _, err := ctrl.ConfirmDelete(ctx); !errors.Is(err, ErrNoStagedDelete) {
		t.Fatalf("second confirm: got %v", err)
	}
}

func TestCancelDeleteIsScopedToBooking(t *testing.T) {
	ctrl, _, _ := newTestController()
	ctx := context.Background()
	a, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "A", "", "aaaa")
	b, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "B", "", "bbbb")

	if err := ctrl.StageDelete(b.ID, "bbbb"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	// Cancelling a different booking must not drop the stage.
	ctrl.CancelDelete(a.ID)
	if staged, ok := ctrl.Staged(); !ok || staged != b.ID {
		t.Fatalf("stage lost to an unrelated cancel: %q, %v", staged, ok)
	}
	ctrl.CancelDelete(b.ID)
	if _, ok := ctrl.Staged(); ok {
		t.Fatal("matching cancel left the stage behind")
	}
	if _, err := ctrl.ConfirmDelete(ctx); !errors.Is(err, ErrNoStagedDelete) {
		t.Fatalf("confirm after cancel: got %v", err)
	}
}

func TestNewerStageReplacesOlder(t *testing.T) {
	ctrl, st, _ := newTestController()
	ctx := context.Background()
	a, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "A", "", "aaaa")
	b, _ := ctrl.Create(ctx, "2025-11-29", "10:00", "B", "", "bbbb")

	if err := ctrl.StageDelete(a.ID, "aaaa"); err != nil {
		t.Fatalf("stage a: %v", err)
	}
	if err := ctrl.StageDelete(b.ID, "bbbb"); err != nil {
		t.Fatalf("stage b: %v", err)
	}
	removed, err := ctrl.ConfirmDelete(ctx)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if removed.ID != b.ID {
		t.Fatalf("newest stage must win, removed %+v", removed)
	}
	if _, ok := st.Get(a.ID); !ok {
		t.Fatal("older staged booking must survive")
	}
}
