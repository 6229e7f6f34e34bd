package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidIDs(t *testing.T) {
	t.Parallel()

	id := New()
	require.False(t, id.IsZero())

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestIDsSortChronologically(t *testing.T) {
	t.Parallel()

	earlier := NewAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	later := NewAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	require.Less(t, earlier.String(), later.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "   ", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrInvalid)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}
