package store

import (
	"context"
	"errors"
	"testing"

	"asset-registry/internal/models"
	"asset-registry/internal/remote"
)

type fakeAPI struct {
	listAssets []models.Asset
	listErr    error

	createAsset *models.Asset
	createErr   error

	updateAsset *models.Asset
	updateErr   error

	deleteErr error
	deletedID string
}

func (f *fakeAPI) List(ctx context.Context) ([]models.Asset, error) {
	return f.listAssets, f.listErr
}

func (f *fakeAPI) Create(ctx context.Context, p *remote.Payload) (*models.Asset, error) {
	return f.createAsset, f.createErr
}

func (f *fakeAPI) Update(ctx context.Context, id string, p *remote.Payload) (*models.Asset, error) {
	return f.updateAsset, f.updateErr
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	if f.deleteErr == nil {
		f.deletedID = id
	}
	return f.deleteErr
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(ctx context.Context, msg string) {
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(ctx context.Context, msg string) {
	n.errors = append(n.errors, msg)
}

func ids(assets []models.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.ID
	}
	return out
}

func sameIDs(a []models.Asset, want ...string) bool {
	got := ids(a)
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFetchReplacesCollectionInServerOrder(t *testing.T) {
	api := &fakeAPI{listAssets: []models.Asset{{ID: "b"}, {ID: "a"}, {ID: "c"}}}
	n := &recordingNotifier{}
	s := New(api, n)

	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !sameIDs(s.Assets(), "b", "a", "c") {
		t.Errorf("collection: %v", ids(s.Assets()))
	}
	if len(n.successes) != 1 || n.successes[0] != "Assets loaded successfully" {
		t.Errorf("notifications: %v", n.successes)
	}

	// a refetch replaces wholesale, dropping entries the server no longer has
	api.listAssets = []models.Asset{{ID: "a"}}
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !sameIDs(s.Assets(), "a") {
		t.Errorf("after refetch: %v", ids(s.Assets()))
	}
}

func TestFetchFailureKeepsCollectionAndRecordsError(t *testing.T) {
	api := &fakeAPI{listAssets: []models.Asset{{ID: "a"}}}
	n := &recordingNotifier{}
	s := New(api, n)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	api.listErr = errors.New("connection refused")
	if err := s.Fetch(context.Background()); err == nil {
		t.Fatal("want fetch error")
	}
	if !sameIDs(s.Assets(), "a") {
		t.Errorf("failed fetch mutated the collection: %v", ids(s.Assets()))
	}
	if s.Err() != "connection refused" {
		t.Errorf("Err() = %q", s.Err())
	}
	if len(n.errors) != 1 || n.errors[0] != "Failed to load assets: connection refused" {
		t.Errorf("notifications: %v", n.errors)
	}

	// a later success clears the recorded error
	api.listErr = nil
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Err() != "" {
		t.Errorf("Err() not cleared: %q", s.Err())
	}
}

func TestCreateAppendsServerRecord(t *testing.T) {
	api := &fakeAPI{
		listAssets:  []models.Asset{{ID: "a"}, {ID: "b"}},
		createAsset: &models.Asset{ID: "c", Name: "New"},
	}
	n := &recordingNotifier{}
	s := New(api, n)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Create(context.Background(), &remote.Payload{}); err != nil {
		t.Fatal(err)
	}
	if !sameIDs(s.Assets(), "a", "b", "c") {
		t.Errorf("collection: %v", ids(s.Assets()))
	}
	if n.successes[len(n.successes)-1] != "Asset added successfully" {
		t.Errorf("notifications: %v", n.successes)
	}
}

func TestCreateFailureLeavesCollectionUnchanged(t *testing.T) {
	api := &fakeAPI{
		listAssets: []models.Asset{{ID: "a"}},
		createErr:  errors.New("boom"),
	}
	n := &recordingNotifier{}
	s := New(api, n)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Create(context.Background(), &remote.Payload{}); err == nil {
		t.Fatal("want create error")
	}
	if !sameIDs(s.Assets(), "a") {
		t.Errorf("collection: %v", ids(s.Assets()))
	}
	if n.errors[len(n.errors)-1] != "Failed to add asset: boom" {
		t.Errorf("notifications: %v", n.errors)
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	api := &fakeAPI{
		listAssets:  []models.Asset{{ID: "a", Name: "One"}, {ID: "b", Name: "Two"}, {ID: "c", Name: "Three"}},
		updateAsset: &models.Asset{ID: "b", Name: "Renamed"},
	}
	n := &recordingNotifier{}
	s := New(api, n)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Update(context.Background(), "b", &remote.Payload{}); err != nil {
		t.Fatal(err)
	}
	assets := s.Assets()
	if !sameIDs(assets, "a", "b", "c") {
		t.Fatalf("order changed: %v", ids(assets))
	}
	if assets[1].Name != "Renamed" {
		t.Errorf("entry not replaced: %+v", assets[1])
	}
	if n.successes[len(n.successes)-1] != "Asset updated successfully" {
		t.Errorf("notifications: %v", n.successes)
	}
}

func TestUpdateMissingIDIsANoOp(t *testing.T) {
	api := &fakeAPI{
		listAssets:  []models.Asset{{ID: "a"}},
		updateAsset: &models.Asset{ID: "ghost", Name: "Ghost"},
	}
	s := New(api, &recordingNotifier{})
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Update(context.Background(), "ghost", &remote.Payload{}); err != nil {
		t.Fatal(err)
	}
	if !sameIDs(s.Assets(), "a") {
		t.Errorf("no-op update changed the collection: %v", ids(s.Assets()))
	}
}

func TestDeleteRemovesOnlyMatchingEntry(t *testing.T) {
	api := &fakeAPI{listAssets: []models.Asset{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	n := &recordingNotifier{}
	s := New(api, n)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(context.Background(), "b"); err != nil {
		t.Fatal(err)
	}
	if api.deletedID != "b" {
		t.Errorf("api got id %q", api.deletedID)
	}
	if !sameIDs(s.Assets(), "a", "c") {
		t.Errorf("collection: %v", ids(s.Assets()))
	}
	if n.successes[len(n.successes)-1] != "Asset deleted successfully" {
		t.Errorf("notifications: %v", n.successes)
	}
}

func TestDeleteFailureLeavesCollectionUnchanged(t *testing.T) {
	api := &fakeAPI{
		listAssets: []models.Asset{{ID: "a"}, {ID: "b"}},
		deleteErr:  errors.New("boom"),
	}
	n := &recordingNotifier{}
	s := New(api, n)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(context.Background(), "a"); err == nil {
		t.Fatal("want delete error")
	}
	if !sameIDs(s.Assets(), "a", "b") {
		t.Errorf("collection: %v", ids(s.Assets()))
	}
	if n.errors[len(n.errors)-1] != "Failed to delete asset: boom" {
		t.Errorf("notifications: %v", n.errors)
	}
}

func TestGetAndSnapshotIsolation(t *testing.T) {
	api := &fakeAPI{listAssets: []models.Asset{{ID: "a", Name: "One"}}}
	s := New(api, &recordingNotifier{})
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, ok := s.Get("a")
	if !ok || got.Name != "One" {
		t.Errorf("Get: %+v ok=%v", got, ok)
	}
	if _, ok := s.Get("zz"); ok {
		t.Errorf("Get found a missing id")
	}

	// mutating a snapshot must not touch the store
	snap := s.Assets()
	snap[0].Name = "Mutated"
	if again, _ := s.Get("a"); again.Name != "One" {
		t.Errorf("snapshot mutation leaked into the store")
	}
}
