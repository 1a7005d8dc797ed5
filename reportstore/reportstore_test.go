/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package reportstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gambit-devs/gambitpairing/internal"
)

func TestReportStore(t *testing.T) {
	ctx := context.Background()
	store := New(internal.ReportArchiveBucket, nil)
	if err := store.Init(ctx); err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			internal.ReportArchiveBucket, err))
	}

	name := fmt.Sprintf("store-test-%v", time.Now().UnixNano())
	payload := []byte(`{"summary":{"comparisons":3}}`)

	if err := store.Put(ctx, name, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}
	defer store.Delete(ctx, name)

	got, err := store.Get(ctx, name)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Get = %q; want %q", got, payload)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.Name == name {
			found = true
		}
	}
	if !found {
		t.Errorf("List does not contain %v", name)
	}

	if err := store.Delete(ctx, name); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, name); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v; want ErrNotFound", err)
	}
}

func TestObjectKey(t *testing.T) {
	if got := objectKey("2026-01-02T0304"); got != "reports/2026-01-02T0304.json.gz" {
		t.Errorf("objectKey = %q", got)
	}
}
