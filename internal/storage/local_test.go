package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorePutGetRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	object := "files/2026/14-03-2026/aabbcc.txt"

	body := "stored bytes"
	err = store.PutObject(ctx, "", object, strings.NewReader(body), int64(len(body)), PutOptions{})
	if err != nil {
		t.Fatal(err)
	}

	reader, info, err := store.GetObject(ctx, "", object)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()
	if info.Size != int64(len(body)) {
		t.Fatalf("size = %d, want %d", info.Size, len(body))
	}
	got, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != body {
		t.Fatalf("read %q", got)
	}

	if err := store.RemoveObject(ctx, "", object); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.GetObject(ctx, "", object); err == nil {
		t.Fatal("object still readable after remove")
	}
	// Removing a missing object is not an error.
	if err := store.RemoveObject(ctx, "", object); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestLocalStorePromote(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	if err != nil {
		t.Fatal(err)
	}

	staging := t.TempDir()
	src := filepath.Join(staging, "upl.pdf")
	if err := os.WriteFile(src, []byte("assembled"), 0o644); err != nil {
		t.Fatal(err)
	}

	object := "files/2026/14-03-2026/deadbeef.pdf"
	dest, err := store.Promote(src, object)
	if err != nil {
		t.Fatal(err)
	}
	if dest != store.ObjectPath(object) {
		t.Fatalf("dest = %q", dest)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("staging file still present after promote")
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "assembled" {
		t.Fatalf("promoted content %q", got)
	}
}
