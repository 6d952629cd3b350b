package certificate

import (
	"context"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
)

func newTestChrome(t *testing.T) *ChromeRenderer {
	t.Helper()
	bin, ok := launcher.LookPath()
	if !ok {
		t.Skip("chrome not installed")
	}
	r := NewChromeRenderer(bin, false, nil)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestChromeRendererClosesTabOnCancelledRequest(t *testing.T) {
	r := newTestChrome(t)
	browser, err := r.ensureBrowser()
	require.NoError(t, err)
	before, err := browser.Pages()
	require.NoError(t, err)

	rows := []models.PDRecord{{ID: 1, StaffID: id(1), StaffNameSnapshot: "Alice", Title: "First aid",
		StartDate: models.NewDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))}}
	doc := Compose(rows, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Render(ctx, doc, testLayout())
	require.Error(t, err)

	after, err := browser.Pages()
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestChromeRendererPrintsPDF(t *testing.T) {
	r := newTestChrome(t)
	rows := []models.PDRecord{{ID: 1, StaffID: id(1), StaffNameSnapshot: "Alice", Title: "First aid",
		StartDate: models.NewDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))}}

	out, err := r.Render(context.Background(), Compose(rows, Options{}), testLayout())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
