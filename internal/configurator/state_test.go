package configurator

import (
	"testing"

	"github.com/tacworldhq/storefront-backend/internal/advisor"
	"github.com/tacworldhq/storefront-backend/internal/catalog"
	"github.com/tacworldhq/storefront-backend/pkg/enums"
	apperrors "github.com/tacworldhq/storefront-backend/pkg/errors"
)

func newState(t *testing.T) *State {
	t.Helper()
	store, err := catalog.NewFromSeed()
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return New(store)
}

func TestNewStateDefaults(t *testing.T) {
	state := newState(t)
	snap := state.Snapshot()
	if snap.Category != enums.HolsterCategoryAll {
		t.Fatalf("expected the all filter, got %s", snap.Category)
	}
	if snap.Selected != nil || snap.Manufacturer != "" || snap.Model != "" || snap.Preview != nil {
		t.Fatalf("fresh state not empty: %+v", snap)
	}
}

func TestSetCategory(t *testing.T) {
	state := newState(t)

	if err := state.SetCategory("duty"); err != nil {
		t.Fatalf("valid category rejected: %v", err)
	}
	if got := state.Snapshot().Category; got != enums.HolsterCategoryDuty {
		t.Fatalf("category not applied, got %s", got)
	}

	if err := state.SetCategory(""); err != nil {
		t.Fatalf("empty filter should reset to all: %v", err)
	}
	if got := state.Snapshot().Category; got != enums.HolsterCategoryAll {
		t.Fatalf("expected all after reset, got %s", got)
	}

	err := state.SetCategory("ankle_rig")
	if appErr := apperrors.As(err); appErr == nil || appErr.Code() != apperrors.CodeValidation {
		t.Fatalf("expected validation error for unknown category, got %v", err)
	}
}

func TestSelectAndClose(t *testing.T) {
	state := newState(t)

	product, err := state.Select("h201")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if product.ID != "h201" {
		t.Fatalf("unexpected product %s", product.ID)
	}
	if snap := state.Snapshot(); snap.Selected == nil || snap.Selected.ID != "h201" {
		t.Fatal("detail view not open on the selected product")
	}

	if _, err := state.Select("no-such-product"); apperrors.As(err) == nil || apperrors.As(err).Code() != apperrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	state.Close()
	state.Close()
	if state.Snapshot().Selected != nil {
		t.Fatal("detail view still open after close")
	}
}

func TestManufacturerChangeResetsModelAndPreview(t *testing.T) {
	state := newState(t)

	if err := state.SetManufacturer("Glock"); err != nil {
		t.Fatalf("set manufacturer: %v", err)
	}
	if err := state.SetModel("G19 Gen 3/4/5"); err != nil {
		t.Fatalf("set model: %v", err)
	}
	if !state.StorePreview("Glock", "G19 Gen 3/4/5", &advisor.Preview{MIMEType: "image/png", Data: []byte{1}}) {
		t.Fatal("preview write for the live pair must land")
	}

	if err := state.SetManufacturer("Sig Sauer"); err != nil {
		t.Fatalf("switch manufacturer: %v", err)
	}
	snap := state.Snapshot()
	if snap.Model != "" {
		t.Fatalf("model survived manufacturer switch: %q", snap.Model)
	}
	if snap.Preview != nil {
		t.Fatal("preview survived manufacturer switch")
	}
}

func TestSetModelRequiresManufacturer(t *testing.T) {
	state := newState(t)
	err := state.SetModel("P365")
	if appErr := apperrors.As(err); appErr == nil || appErr.Code() != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestModelChangeClearsPreview(t *testing.T) {
	state := newState(t)
	if err := state.SetManufacturer("Sig Sauer"); err != nil {
		t.Fatal(err)
	}
	if err := state.SetModel("P320"); err != nil {
		t.Fatal(err)
	}
	state.StorePreview("Sig Sauer", "P320", &advisor.Preview{MIMEType: "image/png", Data: []byte{1}})

	if err := state.SetModel("P365"); err != nil {
		t.Fatal(err)
	}
	if state.Preview() != nil {
		t.Fatal("stale preview kept across model change")
	}
}

func TestSubmitFit(t *testing.T) {
	state := newState(t)

	if _, err := state.SubmitFit(); apperrors.As(err) == nil {
		t.Fatal("incomplete pair must not resolve")
	}

	if err := state.SetManufacturer("Smith & Wesson"); err != nil {
		t.Fatal(err)
	}
	if err := state.SetModel("M&P Shield"); err != nil {
		t.Fatal(err)
	}
	match, err := state.SubmitFit()
	if err != nil {
		t.Fatalf("submit fit: %v", err)
	}
	if match.ID != catalog.FlagshipProductID {
		t.Fatalf("expected the flagship recommendation, got %s", match.ID)
	}
	if snap := state.Snapshot(); snap.Selected == nil || snap.Selected.ID != match.ID {
		t.Fatal("detail view not opened on the recommendation")
	}

	// An unknown pair still resolves to a product.
	if err := state.SetManufacturer("Zenith"); err != nil {
		t.Fatal(err)
	}
	if err := state.SetModel("ZF-5"); err != nil {
		t.Fatal(err)
	}
	if _, err := state.SubmitFit(); err != nil {
		t.Fatalf("unknown pair must still resolve: %v", err)
	}
}

func TestStalePreviewWriteDropped(t *testing.T) {
	state := newState(t)
	if err := state.SetManufacturer("Glock"); err != nil {
		t.Fatal(err)
	}
	if err := state.SetModel("G17"); err != nil {
		t.Fatal(err)
	}

	// Pair changes while a generation for the old pair is in flight.
	if err := state.SetModel("G43/G43X"); err != nil {
		t.Fatal(err)
	}
	if state.StorePreview("Glock", "G17", &advisor.Preview{MIMEType: "image/png", Data: []byte{1}}) {
		t.Fatal("stale preview write must be discarded")
	}
	if state.Preview() != nil {
		t.Fatal("stale payload leaked into the slot")
	}
}
