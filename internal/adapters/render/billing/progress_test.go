package billing

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressModelShowsElapsedTimeForSlowCalls(t *testing.T) {
	now := testNow
	m := newProgressModel("Fetching invoices...", nil, func() time.Time { return now })

	assert.Contains(t, m.View(), "Fetching invoices...")
	assert.NotContains(t, m.View(), "(")

	now = now.Add(3 * time.Second)
	assert.Contains(t, m.View(), "(3s)")
}

func TestProgressModelClearsLineWhenCallReturns(t *testing.T) {
	m := newProgressModel("Saving card...", nil, time.Now)
	callErr := errors.New("declined")

	updated, cmd := m.Update(callDoneMsg{err: callErr})
	require.NotNil(t, cmd)

	final := updated.(progressModel)
	assert.Empty(t, final.View())
	assert.ErrorIs(t, final.err, callErr)
}

func TestRunWithProgressReturnsCallError(t *testing.T) {
	callErr := errors.New("boom")
	var out bytes.Buffer

	err := RunWithProgress(context.Background(), &out, "Paying invoice...", func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return callErr
	})
	assert.ErrorIs(t, err, callErr)
	assert.Contains(t, out.String(), "Paying invoice...")
}
