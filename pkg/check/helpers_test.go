package check

import (
	"errors"
	"testing"
)

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "test"}
	err := errors.New("test error")

	result := r.Fail("something failed", err)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "something failed" {
		t.Errorf("Details = %v, want [something failed]", result.Details)
	}
	if result.Err != err {
		t.Errorf("Err = %v, want %v", result.Err, err)
	}
}

func TestResult_Failf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Failf("status %d, expected %d", 500, 200)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "status 500, expected 200" {
		t.Errorf("Details = %v, want [status 500, expected 200]", result.Details)
	}
	if result.Err == nil || result.Err.Error() != "status 500, expected 200" {
		t.Errorf("Err = %v, want error with message 'status 500, expected 200'", result.Err)
	}
}

func TestResult_AddDetail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetail("first detail").AddDetail("second detail")

	if len(result.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(result.Details))
	}
	if result.Details[0] != "first detail" || result.Details[1] != "second detail" {
		t.Errorf("Details = %v, want [first detail, second detail]", result.Details)
	}
	if result != r {
		t.Error("AddDetail should return the same Result pointer")
	}
}

func TestResult_AddHint(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddHint("pip install langchain").AddHintf("start it with: %s", "node server.js")

	if len(result.Hints) != 2 {
		t.Errorf("len(Hints) = %d, want 2", len(result.Hints))
	}
	if result.Hints[0] != "pip install langchain" {
		t.Errorf("Hints[0] = %q, want %q", result.Hints[0], "pip install langchain")
	}
	if result.Hints[1] != "start it with: node server.js" {
		t.Errorf("Hints[1] = %q, want %q", result.Hints[1], "start it with: node server.js")
	}
	if result.Status == StatusFail {
		t.Error("AddHint should not change the status")
	}
}
