package pkgproc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/loanpack/internal/manifest"
	"github.com/sells-group/loanpack/internal/model"
	"github.com/sells-group/loanpack/pkg/xtract"
)

// stubClient is a scriptable xtract.Client.
type stubClient struct {
	mu            sync.Mutex
	processCalls  int32
	registerCalls int32
	registerErr   error
	componentID   string
	// respond maps file name to a canned response or error.
	responses map[string]*xtract.ProcessResponse
	errors    map[string]error
	// delay, when set, is applied per file name before responding.
	delays map[string]time.Duration
}

func (s *stubClient) Process(ctx context.Context, file []byte, fileName, componentID string) (*xtract.ProcessResponse, error) {
	atomic.AddInt32(&s.processCalls, 1)
	if d, ok := s.delays[fileName]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.errors[fileName]; ok {
		return nil, err
	}
	if resp, ok := s.responses[fileName]; ok {
		return resp, nil
	}
	return &xtract.ProcessResponse{DetectedTemplate: "Generic"}, nil
}

func (s *stubClient) RegisterComponent(ctx context.Context, req xtract.RegisterComponentRequest) (*xtract.RegisterComponentResponse, error) {
	atomic.AddInt32(&s.registerCalls, 1)
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	id := s.componentID
	if id == "" {
		id = "comp-1"
	}
	return &xtract.RegisterComponentResponse{ComponentID: id}, nil
}

func (s *stubClient) PredefinedTemplates(ctx context.Context) ([]model.DocumentTemplate, error) {
	return nil, nil
}

// testStore returns a store with one two-document package whose files exist
// under the returned root.
func testStore(t *testing.T) (*manifest.Store, string) {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "pkg-a")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "license.jpg"), []byte("jpeg-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paystub.pdf"), []byte("pdf-bytes"), 0o644))

	store := &manifest.Store{
		Packages: []model.PackageManifest{
			{
				ID:        "pkga",
				Name:      "Test Package",
				Directory: "pkg-a",
				Documents: []model.ManifestDocument{
					{FileName: "license.jpg", DocumentType: "Driver's License", Category: model.CategoryIdentification},
					{FileName: "paystub.pdf", DocumentType: "Pay Stub", Category: model.CategoryIncome},
				},
			},
		},
		Templates: manifest.DefaultTemplates(),
		Mappings:  manifest.DefaultMappings(),
	}
	return store, root
}

func field(name, value string, state model.ValidationState) model.ExtractedField {
	return model.ExtractedField{
		FieldName:       name,
		Value:           model.FieldValue{Value: value, Format: model.FormatText},
		ValidationState: state,
	}
}

func TestProcess_Success(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	client := &stubClient{
		responses: map[string]*xtract.ProcessResponse{
			"license.jpg": {
				DetectedTemplate: "Driver License",
				Fields: []model.ExtractedField{
					field("firstName", "Ima", model.ValidationValid),
					field("lastName", "Cardholder", model.ValidationVerificationNeeded),
				},
			},
			"paystub.pdf": {
				DetectedTemplate: "Pay Stub",
				Fields: []model.ExtractedField{
					field("grossPay", "3,500.00", model.ValidationValid),
					field("employer", "", model.ValidationUndefined),
				},
			},
		},
	}

	p := New(client, store, root)
	result, err := p.Process(context.Background(), "pkga")
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, "license.jpg", result.Documents[0].ID)
	assert.Equal(t, model.DocumentCompleted, result.Documents[0].Status)
	assert.Equal(t, "Driver License", result.Documents[0].DetectedTemplate)
	assert.Empty(t, result.Documents[0].Error)

	s := result.Summary
	assert.Equal(t, "pkga", s.PackageID)
	assert.Equal(t, 2, s.TotalDocuments)
	assert.Equal(t, 2, s.SuccessfulDocuments)
	assert.Equal(t, 0, s.FailedDocuments)
	assert.Equal(t, 4, s.TotalFields)
	assert.Equal(t, 2, s.ValidFields)
	assert.Equal(t, 1, s.VerificationNeededFields)
	assert.Equal(t, 1, s.MissingFields)
	assert.Equal(t, model.PackageCompleted, s.OverallStatus)
}

func TestProcess_UnknownPackage(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	client := &stubClient{}

	p := New(client, store, root)
	_, err := p.Process(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPackage)

	// A caller error: no network calls at all.
	assert.Zero(t, atomic.LoadInt32(&client.registerCalls))
	assert.Zero(t, atomic.LoadInt32(&client.processCalls))
}

func TestProcess_RegistrationFailureAborts(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	client := &stubClient{registerErr: errors.New("boom")}

	p := New(client, store, root)
	_, err := p.Process(context.Background(), "pkga")
	require.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(&client.processCalls), "no documents may be submitted without templates")
}

func TestProcess_ExtractionFailureIsIsolated(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	client := &stubClient{
		errors: map[string]error{"license.jpg": errors.New("remote 500")},
		responses: map[string]*xtract.ProcessResponse{
			"paystub.pdf": {
				DetectedTemplate: "Pay Stub",
				Fields:           []model.ExtractedField{field("grossPay", "3,500.00", model.ValidationValid)},
			},
		},
	}

	p := New(client, store, root)
	result, err := p.Process(context.Background(), "pkga")
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, model.DocumentFailed, result.Documents[0].Status)
	assert.Contains(t, result.Documents[0].Error, "remote 500")
	assert.Nil(t, result.Documents[0].Fields)
	assert.Equal(t, model.DocumentCompleted, result.Documents[1].Status)

	s := result.Summary
	assert.Equal(t, 1, s.SuccessfulDocuments)
	assert.Equal(t, 1, s.FailedDocuments)
	assert.Equal(t, 1, s.TotalFields, "failed documents contribute no fields")
	assert.Equal(t, model.PackagePartial, s.OverallStatus)
}

func TestProcess_MissingFileIsIsolatedAndNotSubmitted(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	require.NoError(t, os.Remove(filepath.Join(root, "pkg-a", "license.jpg")))
	client := &stubClient{}

	p := New(client, store, root)
	result, err := p.Process(context.Background(), "pkga")
	require.NoError(t, err)

	assert.Equal(t, model.DocumentFailed, result.Documents[0].Status)
	assert.NotEmpty(t, result.Documents[0].Error)
	assert.Equal(t, model.DocumentCompleted, result.Documents[1].Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.processCalls), "unloadable files are never submitted")
}

func TestProcess_PreservesManifestOrder(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	// First document responds slowest; output order must not change.
	client := &stubClient{
		delays: map[string]time.Duration{"license.jpg": 50 * time.Millisecond},
	}

	p := New(client, store, root)
	result, err := p.Process(context.Background(), "pkga")
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, "license.jpg", result.Documents[0].FileName)
	assert.Equal(t, "paystub.pdf", result.Documents[1].FileName)
}

func TestProcess_SummaryInvariant(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	client := &stubClient{
		responses: map[string]*xtract.ProcessResponse{
			"license.jpg": {Fields: []model.ExtractedField{
				field("a", "1", model.ValidationValid),
				field("b", "2", model.ValidationVerificationNeeded),
				field("c", "", model.ValidationUndefined),
			}},
			"paystub.pdf": {Fields: []model.ExtractedField{
				field("d", "4", model.ValidationValid),
			}},
		},
	}

	p := New(client, store, root)
	result, err := p.Process(context.Background(), "pkga")
	require.NoError(t, err)

	s := result.Summary
	assert.Equal(t, s.TotalFields, s.ValidFields+s.VerificationNeededFields+s.MissingFields)
}

func TestProcess_RegistersOncePerRun(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	client := &stubClient{}

	p := New(client, store, root)
	_, err := p.Process(context.Background(), "pkga")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.registerCalls))
}

func TestProcessDocument(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	client := &stubClient{
		responses: map[string]*xtract.ProcessResponse{
			"upload.pdf": {
				DetectedTemplate: "Bank Statement",
				Fields:           []model.ExtractedField{field("bankName", "First National", model.ValidationValid)},
			},
		},
	}

	p := New(client, store, root)
	result, err := p.ProcessDocument(context.Background(), []byte("pdf-bytes"), "upload.pdf")
	require.NoError(t, err)
	assert.Equal(t, model.DocumentCompleted, result.Status)
	assert.Equal(t, "Bank Statement", result.DetectedTemplate)
	assert.Equal(t, "upload.pdf", result.ID)
}

func TestProcess_StableClock(t *testing.T) {
	t.Parallel()

	store, root := testStore(t)
	client := &stubClient{}
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	p := New(client, store, root, WithClock(func() time.Time { return fixed }))
	result, err := p.Process(context.Background(), "pkga")
	require.NoError(t, err)
	assert.Equal(t, fixed, result.Summary.Timestamp)
	assert.Equal(t, fixed, result.Documents[0].Timestamp)
}
