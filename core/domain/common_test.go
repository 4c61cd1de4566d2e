package domain

import (
	"testing"
	"time"
)

func TestParseApprovalStatus_KnownTokens(t *testing.T) {
	if got := ParseApprovalStatus("true"); got != ApprovalApproved {
		t.Errorf("ParseApprovalStatus(true) = %v, want ApprovalApproved", got)
	}
	if got := ParseApprovalStatus("false"); got != ApprovalNotApproved {
		t.Errorf("ParseApprovalStatus(false) = %v, want ApprovalNotApproved", got)
	}
}

func TestParseApprovalStatus_CaseInsensitive(t *testing.T) {
	if got := ParseApprovalStatus("True"); got != ApprovalApproved {
		t.Errorf("ParseApprovalStatus(True) = %v, want ApprovalApproved", got)
	}
}

func TestParseApprovalStatus_UnknownTokenIsUnspecified(t *testing.T) {
	if got := ParseApprovalStatus("maybe"); got != ApprovalUnspecified {
		t.Errorf("ParseApprovalStatus(maybe) = %v, want ApprovalUnspecified", got)
	}
}

func TestApprovalStatus_UnspecifiedHasNoToken(t *testing.T) {
	if got := ApprovalUnspecified.Token(); got != "" {
		t.Errorf("ApprovalUnspecified.Token() = %q, want empty", got)
	}
}

func TestApprovalStatus_String(t *testing.T) {
	if got := ApprovalNotApproved.String(); got != "Not approved" {
		t.Errorf("ApprovalNotApproved.String() = %q, want %q", got, "Not approved")
	}
}

func TestCommon_TitleText_NilTitleIsEmpty(t *testing.T) {
	c := &Common{}

	if got := c.TitleText(); got != "" {
		t.Errorf("TitleText with nil title = %q, want empty", got)
	}
}

func TestCommon_TitleText_StripsMarkup(t *testing.T) {
	c := &Common{Title: &TextContent{Value: "<b>Bold</b> title", Type: TextHTML}}

	if got := c.TitleText(); got != "Bold title" {
		t.Errorf("TitleText = %q, want %q", got, "Bold title")
	}
}

func TestCompareCommon_EqualBlocks(t *testing.T) {
	created := time.Date(2006, 9, 5, 18, 30, 0, 0, time.UTC)
	a := &Common{ID: "109", Title: NewTextContent("First post"), CreatedOn: created, ApprovalStatus: ApprovalApproved}
	b := &Common{ID: "109", Title: NewTextContent("First post"), CreatedOn: created, ApprovalStatus: ApprovalApproved}

	if got := CompareCommon(a, b); got != 0 {
		t.Errorf("CompareCommon(equal) = %d, want 0", got)
	}
}

func TestCompareCommon_IDIsCaseInsensitive(t *testing.T) {
	a := &Common{ID: "Post-1"}
	b := &Common{ID: "post-1"}

	if got := CompareCommon(a, b); got != 0 {
		t.Errorf("CompareCommon with case-differing IDs = %d, want 0", got)
	}
}

func TestCompareCommon_ApprovalStatusResolvesFirst(t *testing.T) {
	a := &Common{ID: "zzz", ApprovalStatus: ApprovalApproved}
	b := &Common{ID: "aaa", ApprovalStatus: ApprovalNotApproved}

	// Approval status has priority over the identifier.
	if got := CompareCommon(a, b); got >= 0 {
		t.Errorf("CompareCommon = %d, want negative (status resolves before ID)", got)
	}
}

func TestCompareCommon_AbsentTitleSortsFirst(t *testing.T) {
	a := &Common{ID: "1"}
	b := &Common{ID: "1", Title: NewTextContent("Named")}

	if got := CompareCommon(a, b); got != -1 {
		t.Errorf("CompareCommon(nil title, title) = %d, want -1", got)
	}
	if got := CompareCommon(b, a); got != 1 {
		t.Errorf("CompareCommon(title, nil title) = %d, want 1", got)
	}
}
