package backup

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/savrlabs/savr/internal/database"
	"github.com/savrlabs/savr/internal/model"
	"github.com/savrlabs/savr/internal/store"
)

// mockS3Client implements s3Client for testing.
type mockS3Client struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
	getErr  error
	delErr  error
}

func newMockS3() *mockS3Client {
	return &mockS3Client{objects: make(map[string][]byte)}
}

func (m *mockS3Client) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, _ := io.ReadAll(input.Body)
	m.objects[*input.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3Client) GetObject(_ context.Context, input *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[*input.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{
		Body: io.NopCloser(bytes.NewReader(data)),
	}, nil
}

func (m *mockS3Client) DeleteObject(_ context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if m.delErr != nil {
		return nil, m.delErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, *input.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func testConfig() Config {
	return Config{
		S3:            S3Config{Bucket: "test", AccessKey: "key", SecretKey: "secret"},
		Passphrase:    "swordfish",
		IntervalHours: 24,
		RetentionDays: 30,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupManager wires a Manager with an in-memory database and a mock S3
// client.
func setupManager(t *testing.T) (*Manager, *mockS3Client, *store.BackupStore, *sql.DB) {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	bs := store.NewBackupStore(db)
	m := NewManager(testConfig(), db, bs, nil, discardLogger())

	mock := newMockS3()
	m.client = mock

	return m, mock, bs, db
}

func TestManagerStateLifecycle(t *testing.T) {
	// Without S3 config the manager is disabled
	m := NewManager(Config{}, nil, nil, nil, discardLogger())
	if m.Status().State != StateDisabled {
		t.Errorf("state = %q, want %q", m.Status().State, StateDisabled)
	}
	if m.Enabled() {
		t.Error("Enabled() = true for unconfigured manager")
	}

	// Full config brings it to idle
	m2 := NewManager(testConfig(), nil, nil, nil, discardLogger())
	if m2.Status().State != StateIdle {
		t.Errorf("state = %q, want %q", m2.Status().State, StateIdle)
	}

	// Missing passphrase keeps it disabled even with S3 credentials
	cfg := testConfig()
	cfg.Passphrase = ""
	m3 := NewManager(cfg, nil, nil, nil, discardLogger())
	if m3.Status().State != StateDisabled {
		t.Errorf("state without passphrase = %q, want %q", m3.Status().State, StateDisabled)
	}
}

func TestManagerStatusCallback(t *testing.T) {
	var mu sync.Mutex
	var received []Status
	cb := func(s Status) {
		mu.Lock()
		received = append(received, s)
		mu.Unlock()
	}

	m := NewManager(testConfig(), nil, nil, cb, discardLogger())

	m.setStatus(Status{State: StateRunning, InProgress: true})
	m.setStatus(Status{State: StateIdle})

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Fatalf("received %d callbacks, want 2", len(received))
	}
	if received[0].State != StateRunning {
		t.Errorf("first callback state = %q, want %q", received[0].State, StateRunning)
	}
	if received[1].State != StateIdle {
		t.Errorf("second callback state = %q, want %q", received[1].State, StateIdle)
	}
}

func TestRunNowUploadsEncryptedSnapshot(t *testing.T) {
	m, mock, bs, _ := setupManager(t)

	id, err := m.RunNow(context.Background())
	if err != nil {
		t.Fatalf("RunNow: %v", err)
	}

	record, err := bs.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if record == nil {
		t.Fatal("backup record not found")
	}
	if record.Status != model.BackupStatusCompleted {
		t.Errorf("status = %q, want %q", record.Status, model.BackupStatusCompleted)
	}
	if record.SizeBytes == 0 {
		t.Error("size_bytes = 0")
	}
	if record.CompletedAt == nil {
		t.Error("completed_at not set")
	}

	mock.mu.Lock()
	encrypted, ok := mock.objects[record.S3Key]
	mock.mu.Unlock()
	if !ok {
		t.Fatalf("object %q not uploaded", record.S3Key)
	}

	plaintext, err := Decrypt(encrypted, "swordfish")
	if err != nil {
		t.Fatalf("decrypt uploaded backup: %v", err)
	}
	if !bytes.HasPrefix(plaintext, []byte("SQLite format 3")) {
		t.Error("decrypted snapshot is not a SQLite database")
	}

	status := m.Status()
	if status.State != StateIdle {
		t.Errorf("state = %q, want %q", status.State, StateIdle)
	}
	if status.LastBackup == nil {
		t.Error("LastBackup not set")
	}
}

func TestRunNowUploadFailure(t *testing.T) {
	m, mock, bs, _ := setupManager(t)
	mock.putErr = errors.New("bucket unavailable")

	if _, err := m.RunNow(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	records, err := bs.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Status != model.BackupStatusFailed {
		t.Errorf("status = %q, want %q", records[0].Status, model.BackupStatusFailed)
	}
	if records[0].Error == "" {
		t.Error("error message not recorded")
	}

	if m.Status().State != StateError {
		t.Errorf("state = %q, want %q", m.Status().State, StateError)
	}
}

func TestRunNowNotConfigured(t *testing.T) {
	m := NewManager(Config{}, nil, nil, nil, discardLogger())
	if _, err := m.RunNow(context.Background()); err == nil {
		t.Fatal("expected error for unconfigured manager")
	}
}

func TestDownload(t *testing.T) {
	m, _, _, _ := setupManager(t)

	id, err := m.RunNow(context.Background())
	if err != nil {
		t.Fatalf("RunNow: %v", err)
	}

	body, size, err := m.Download(context.Background(), id)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if int64(len(data)) != size {
		t.Errorf("len(data) = %d, want %d", len(data), size)
	}
}

func TestDownloadMissing(t *testing.T) {
	m, _, _, _ := setupManager(t)

	if _, _, err := m.Download(context.Background(), 999); err == nil {
		t.Fatal("expected error for missing backup")
	}
}

func TestCleanupDeletesExpiredObjects(t *testing.T) {
	m, mock, bs, db := setupManager(t)

	id, err := m.RunNow(context.Background())
	if err != nil {
		t.Fatalf("RunNow: %v", err)
	}
	record, err := bs.GetByID(id)
	if err != nil || record == nil {
		t.Fatalf("GetByID: %v", err)
	}

	// Age the record past the retention window
	old := time.Now().UTC().AddDate(0, 0, -60)
	if _, err := db.Exec("UPDATE backups SET created_at = ? WHERE id = ?", old, record.ID); err != nil {
		t.Fatalf("age record: %v", err)
	}

	if err := m.Cleanup(context.Background()); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	mock.mu.Lock()
	_, stillThere := mock.objects[record.S3Key]
	mock.mu.Unlock()
	if stillThere {
		t.Error("expired object not deleted from s3")
	}

	remaining, err := bs.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("got %d records after cleanup, want 0", len(remaining))
	}
}

func TestManagerStopSafety(t *testing.T) {
	m := NewManager(testConfig(), nil, nil, nil, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	m.Stop()

	// Double stop should not panic
	m.Stop()
}

func TestManagerDisabledNoStart(t *testing.T) {
	m := NewManager(Config{}, nil, nil, nil, discardLogger())

	m.Start(context.Background())

	// Stop should not block
	m.Stop()
}
