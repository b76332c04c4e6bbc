package postgres

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cumplia/compliance-api/internal/core/domain"
)

func TestUpdateBuilder_NoFields(t *testing.T) {
	var b UpdateBuilder
	if _, _, err := b.Build("users", "id", int64(1)); err != domain.ErrNoFieldsProvided {
		t.Fatalf("expected ErrNoFieldsProvided, got %v", err)
	}
}

func TestUpdateBuilder_SingleField(t *testing.T) {
	var b UpdateBuilder
	b.Set("email", "a@b.com")

	sql, args, err := b.Build("users", "id", int64(7))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	want := "UPDATE users SET email = $1, last_modified = $2 WHERE id = $3"
	if sql != want {
		t.Fatalf("unexpected sql:\n got %q\nwant %q", sql, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[0] != "a@b.com" {
		t.Fatalf("first arg should be the email, got %v", args[0])
	}
	if _, ok := args[1].(time.Time); !ok {
		t.Fatalf("second arg should be the last_modified timestamp, got %T", args[1])
	}
	if args[2] != int64(7) {
		t.Fatalf("record id must be bound last, got %v", args[2])
	}
}

func TestUpdateBuilder_NilBindsNull(t *testing.T) {
	var b UpdateBuilder
	b.Set("company_id", (*int64)(nil))

	_, args, err := b.Build("users", "id", int64(3))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if v, ok := args[0].(*int64); !ok || v != nil {
		t.Fatalf("expected nil *int64 bound first, got %#v", args[0])
	}
}

// Placeholders and arguments must come from the same ordered sequence: for
// any number of fields, placeholder i refers to the value passed in the i-th
// Set call, with last_modified and the id following.
func TestUpdateBuilder_PlaceholdersAlignWithArgs(t *testing.T) {
	for n := 1; n <= 5; n++ {
		var b UpdateBuilder
		for i := 0; i < n; i++ {
			b.Set(fmt.Sprintf("col%d", i), fmt.Sprintf("val%d", i))
		}

		sql, args, err := b.Build("users", "id", int64(99))
		if err != nil {
			t.Fatalf("n=%d: Build returned error: %v", n, err)
		}

		if len(args) != n+2 {
			t.Fatalf("n=%d: expected %d args, got %d", n, n+2, len(args))
		}
		for i := 0; i < n; i++ {
			assignment := fmt.Sprintf("col%d = $%d", i, i+1)
			if !strings.Contains(sql, assignment) {
				t.Fatalf("n=%d: sql %q missing %q", n, sql, assignment)
			}
			if args[i] != fmt.Sprintf("val%d", i) {
				t.Fatalf("n=%d: arg %d drifted: %v", n, i, args[i])
			}
		}
		if !strings.Contains(sql, fmt.Sprintf("last_modified = $%d", n+1)) {
			t.Fatalf("n=%d: last_modified placeholder wrong in %q", n, sql)
		}
		if !strings.HasSuffix(sql, fmt.Sprintf("WHERE id = $%d", n+2)) {
			t.Fatalf("n=%d: id placeholder wrong in %q", n, sql)
		}
		if args[len(args)-1] != int64(99) {
			t.Fatalf("n=%d: id must be the final arg, got %v", n, args[len(args)-1])
		}
	}
}
