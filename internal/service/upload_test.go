package service

import (
	"HelpDesk/config"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func uploadTestConfig(t *testing.T) {
	t.Helper()
	prev := config.UploadConfigInstance
	config.UploadConfigInstance = &config.UploadConfig{
		StagingDir:       t.TempDir(),
		StoreDir:         t.TempDir(),
		StoreBackend:     "local",
		MaxFileBytes:     1 << 20,
		MaxFilesPerOrder: 5,
	}
	t.Cleanup(func() { config.UploadConfigInstance = prev })
}

func chunkReq(uploadID, fileName string, index int, offset int64, total int, size int64) ChunkRequest {
	return ChunkRequest{
		UploadID:    uploadID,
		FileName:    fileName,
		ChunkIndex:  index,
		ByteOffset:  offset,
		TotalChunks: total,
		TotalSize:   size,
	}
}

func TestDatedStagingDir(t *testing.T) {
	uploadTestConfig(t)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	dir, err := DatedStagingDir(now)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(dir, "2026/14-03-2026") && !strings.HasSuffix(dir, `2026\14-03-2026`) {
		t.Fatalf("unexpected staging dir %q", dir)
	}
	if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
		t.Fatalf("staging dir not created: %v", err)
	}

	// A second call for the same day is a no-op.
	if _, err := DatedStagingDir(now); err != nil {
		t.Fatal(err)
	}
}

func TestStagingPathExtension(t *testing.T) {
	dir := t.TempDir()

	withExt := StagingPath(dir, chunkReq("abc", "report.pdf", 0, 0, 1, 4))
	if !strings.HasSuffix(withExt, "abc.pdf") {
		t.Fatalf("got %q, want abc.pdf suffix", withExt)
	}

	noExt := StagingPath(dir, chunkReq("abc", "README", 0, 0, 1, 4))
	if !strings.HasSuffix(noExt, "abc.no_file_extension") {
		t.Fatalf("got %q, want sentinel extension", noExt)
	}
}

func TestWriteChunkReassembly(t *testing.T) {
	dir := t.TempDir()
	parts := []string{"hello ", "chunked ", "world"}

	var offset int64
	for i, part := range parts {
		req := chunkReq("upl1", "data.txt", i, offset, len(parts), 19)
		if err := WriteChunk(dir, req, strings.NewReader(part)); err != nil {
			t.Fatalf("chunk %d: %v", i, err)
		}
		offset += int64(len(part))
	}

	got, err := os.ReadFile(StagingPath(dir, chunkReq("upl1", "data.txt", 0, 0, 3, 19)))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello chunked world" {
		t.Fatalf("reassembled %q", got)
	}
}

func TestWriteChunkLateChunkZero(t *testing.T) {
	dir := t.TempDir()

	// A later chunk creates the staging file; chunk 0 arriving after
	// that is indistinguishable from an id reuse and must be refused.
	last := chunkReq("upl2", "data.txt", 1, 5, 2, 10)
	if err := WriteChunk(dir, last, strings.NewReader("56789")); err != nil {
		t.Fatal(err)
	}
	first := chunkReq("upl2", "data.txt", 0, 0, 2, 10)
	if err := WriteChunk(dir, first, strings.NewReader("01234")); !errors.Is(err, ErrConflict) {
		t.Fatalf("late chunk 0: got %v, want ErrConflict", err)
	}
}

func TestWriteChunkZeroConflict(t *testing.T) {
	dir := t.TempDir()
	req := chunkReq("upl3", "data.txt", 0, 0, 2, 10)

	if err := WriteChunk(dir, req, strings.NewReader("01234")); err != nil {
		t.Fatal(err)
	}
	// A fresh upload reusing the id must be refused at chunk 0.
	err := WriteChunk(dir, req, strings.NewReader("99999"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}

	// A retransmitted later chunk is not a conflict.
	later := chunkReq("upl3", "data.txt", 1, 5, 2, 10)
	if err := WriteChunk(dir, later, strings.NewReader("56789")); err != nil {
		t.Fatal(err)
	}
	if err := WriteChunk(dir, later, strings.NewReader("56789")); err != nil {
		t.Fatal(err)
	}
}

func TestCheckComplete(t *testing.T) {
	dir := t.TempDir()
	req := chunkReq("upl4", "data.txt", 0, 0, 1, 5)
	if err := WriteChunk(dir, req, strings.NewReader("01234")); err != nil {
		t.Fatal(err)
	}

	size, err := CheckComplete(dir, req, 0)
	if err != nil {
		t.Fatal(err)
	}
	if size != 5 {
		t.Fatalf("size = %d", size)
	}

	// Declared total disagrees with the bytes on disk.
	short := chunkReq("upl4", "data.txt", 0, 0, 1, 9)
	if _, err := CheckComplete(dir, short, 0); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("got %v, want ErrSizeMismatch", err)
	}
	// The partial stays on disk after a failed check.
	if _, statErr := os.Stat(StagingPath(dir, req)); statErr != nil {
		t.Fatalf("partial removed: %v", statErr)
	}

	if _, err := CheckComplete(dir, req, 3); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v, want ErrTooLarge", err)
	}
}

func TestIsFinalChunk(t *testing.T) {
	if IsFinalChunk(chunkReq("u", "f", 0, 0, 2, 1)) {
		t.Fatal("chunk 0 of 2 is not final")
	}
	if !IsFinalChunk(chunkReq("u", "f", 1, 0, 2, 1)) {
		t.Fatal("chunk 1 of 2 is final")
	}
	if !IsFinalChunk(chunkReq("u", "f", 0, 0, 1, 1)) {
		t.Fatal("single chunk is final")
	}
}

func TestFileObjectName(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	got := FileObjectName("deadbeef", ".pdf", now)
	want := "files/2026/14-03-2026/deadbeef.pdf"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
