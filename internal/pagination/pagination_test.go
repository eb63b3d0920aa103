package pagination

import "testing"

func TestNormalizedClampsBounds(t *testing.T) {
	t.Parallel()

	req := PageRequest{PageIndex: -3, PageSize: 0}.Normalized()
	if req.PageIndex != 0 || req.PageSize != DefaultPageSize {
		t.Fatalf("expected defaults, got %+v", req)
	}
	req = PageRequest{PageSize: MaxPageSize + 50}.Normalized()
	if req.PageSize != MaxPageSize {
		t.Fatalf("expected clamp to %d, got %d", MaxPageSize, req.PageSize)
	}
}

func TestOffsetAndFetchLimit(t *testing.T) {
	t.Parallel()

	req := PageRequest{PageIndex: 3, PageSize: 25}
	if req.Offset() != 75 {
		t.Fatalf("expected offset 75, got %d", req.Offset())
	}
	if req.FetchLimit() != 26 {
		t.Fatalf("expected fetch limit 26, got %d", req.FetchLimit())
	}
}

func TestNewPageTrimsOverfetch(t *testing.T) {
	t.Parallel()

	req := PageRequest{PageIndex: 0, PageSize: 2}
	page := NewPage([]int{1, 2, 3}, req, 10)
	if len(page.Items) != 2 {
		t.Fatalf("expected trimmed page of 2, got %d", len(page.Items))
	}
	if !page.Info.HasNext {
		t.Fatalf("expected has_next after over-fetch")
	}
	if page.Info.Total != 10 {
		t.Fatalf("expected total 10, got %d", page.Info.Total)
	}

	page = NewPage([]int{1, 2}, req, 2)
	if page.Info.HasNext {
		t.Fatalf("exact page must not report has_next")
	}
}

func TestNewPageNeverReturnsNilItems(t *testing.T) {
	t.Parallel()

	page := NewPage[int](nil, PageRequest{PageSize: 5}, 0)
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("expected empty non-nil items")
	}
}
