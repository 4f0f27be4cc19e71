package domain

import "testing"

func TestRCRecord_TableName(t *testing.T) {
	orig := rcTableName
	t.Cleanup(func() { rcTableName = orig })

	if got := (RCRecord{}).TableName(); got != "rc_details" {
		t.Fatalf("default table name = %q", got)
	}

	SetRCTableName("rc_cache")
	if got := (RCRecord{}).TableName(); got != "rc_cache" {
		t.Fatalf("overridden table name = %q", got)
	}

	// Blank and whitespace-only overrides are ignored.
	SetRCTableName("")
	SetRCTableName("   ")
	if got := (RCRecord{}).TableName(); got != "rc_cache" {
		t.Fatalf("blank override should be ignored, got %q", got)
	}

	// Surrounding whitespace is trimmed.
	SetRCTableName("  rc_records  ")
	if got := (RCRecord{}).TableName(); got != "rc_records" {
		t.Fatalf("trimmed override = %q", got)
	}
}
