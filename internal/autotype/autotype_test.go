package autotype

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetools/bee/pkg/wordcodec"
)

type FakeHive struct {
	Letters   string
	FailOn    string
	Submitted []string
}

func (f *FakeHive) LocateLetters(context.Context) (string, error) { return f.Letters, nil }

func (f *FakeHive) Submit(_ context.Context, word string) error {
	if word == f.FailOn {
		return errors.New("input lost focus")
	}
	f.Submitted = append(f.Submitted, word)
	return nil
}

func newTestTyper(h Hive, slept *[]time.Duration) *Typer {
	t := NewTyper(h)
	t.rand = rand.New(rand.NewPCG(1, 2))
	t.sleep = func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
	return t
}

func TestTyperSubmitsDecodedWords(t *testing.T) {
	hive := &FakeHive{Letters: "abgcfed"}
	letters, err := hive.LocateLetters(context.Background())
	require.NoError(t, err)

	payload, err := wordcodec.Encode([]string{"bagged", "cafe", "decafbag"}, "abgcfed")
	require.NoError(t, err)
	words, err := wordcodec.Decode(payload, letters)
	require.NoError(t, err)

	var slept []time.Duration
	var seen []int
	typer := newTestTyper(hive, &slept)
	typer.OnWord = func(i int, _ string) { seen = append(seen, i) }

	n, err := typer.Run(context.Background(), words)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"bagged", "cafe", "decafbag"}, hive.Submitted)
	assert.Equal(t, []int{0, 1, 2}, seen)
	require.Len(t, slept, 3)
	for _, d := range slept {
		assert.GreaterOrEqual(t, d, DefaultWordDelay.Min)
		assert.LessOrEqual(t, d, DefaultWordDelay.Max)
	}
}

func TestTyperStopsOnSubmitError(t *testing.T) {
	hive := &FakeHive{FailOn: "cafe"}
	var slept []time.Duration
	n, err := newTestTyper(hive, &slept).Run(context.Background(), []string{"bagged", "cafe", "face"})
	require.ErrorContains(t, err, `failed to submit "cafe"`)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"bagged"}, hive.Submitted)
}

func TestTyperNoWords(t *testing.T) {
	_, err := NewTyper(&FakeHive{}).Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestTyperHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hive := &FakeHive{}
	typer := NewTyper(hive)
	typer.WordDelay = Delay{Min: time.Hour, Max: time.Hour}
	typer.OnWord = func(int, string) { cancel() }

	n, err := typer.Run(ctx, []string{"bagged", "cafe"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, n)
}

func TestDelayPick(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	d := Delay{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}
	for i := 0; i < 100; i++ {
		got := d.Pick(r)
		assert.GreaterOrEqual(t, got, d.Min)
		assert.LessOrEqual(t, got, d.Max)
	}
	assert.Equal(t, 5*time.Millisecond, Delay{Min: 5 * time.Millisecond}.Pick(r))
}

func TestNormalizeHiveLetters(t *testing.T) {
	got, err := normalizeHiveLetters("ABGCFED")
	require.NoError(t, err)
	assert.Equal(t, "abgcfed", got)

	_, err = normalizeHiveLetters("")
	assert.ErrorContains(t, err, "not found")

	_, err = normalizeHiveLetters("abgcfe")
	assert.ErrorIs(t, err, wordcodec.ErrInvalidAlphabet)
}
