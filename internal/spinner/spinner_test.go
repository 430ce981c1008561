package spinner

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerAnimatesAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	var out syncBuffer
	s := Start(&out, "Loading model")
	time.Sleep(3 * interval)
	s.Stop("Model loaded")
	s.Stop("ignored")

	got := out.String()
	assert.Contains(t, got, "Loading model")
	assert.Contains(t, got, "\r"+strings.Repeat(" ", len("Loading model")+2)+"\r")
	assert.True(t, strings.HasSuffix(got, "Model loaded\n"))
	assert.Equal(t, 1, strings.Count(got, "Model loaded"))
}

func TestSpinnerStopWithoutFinal(t *testing.T) {
	defer goleak.VerifyNone(t)

	var out syncBuffer
	s := Start(&out, "Fetching")
	s.Stop("")

	assert.True(t, strings.HasSuffix(out.String(), "\r"))
}
