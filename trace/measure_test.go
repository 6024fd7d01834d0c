package trace

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogui/gui"
)

type traceFile struct {
	TraceEvents []struct {
		Name  string `json:"name"`
		Phase string `json:"ph"`
		TS    int64  `json:"ts"`
	} `json:"traceEvents"`
}

func TestEventsFormValidJSON(t *testing.T) {
	var buf bytes.Buffer
	m := New(&buf, "gogui")
	tick := time.UnixMicro(1000)
	m.now = func() time.Time {
		tick = tick.Add(time.Microsecond)
		return tick
	}

	m.Time("layout")
	m.Time(`quoted "name"`)
	m.Stop(`quoted "name"`)
	m.Stop("layout")
	require.NoError(t, m.Finish())

	var got traceFile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.TraceEvents, 5)
	assert.Equal(t, "process_name", got.TraceEvents[0].Name)
	assert.Equal(t, "B", got.TraceEvents[1].Phase)
	assert.Equal(t, `quoted "name"`, got.TraceEvents[2].Name)
	assert.Equal(t, "E", got.TraceEvents[4].Phase)
	assert.Equal(t, int64(1004), got.TraceEvents[4].TS)
}

func TestTracesContextPasses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gogui.trace")
	m, err := Create(path, "gogui")
	require.NoError(t, err)

	c := gui.New(gui.WithTracer(m))
	s := c.CreateSurface(10, 10)
	el := c.CreateElement()
	c.AttachToSurface(el, s)
	require.NoError(t, m.Finish())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got traceFile
	require.NoError(t, json.Unmarshal(data, &got))
	var names []string
	for _, ev := range got.TraceEvents[1:] {
		names = append(names, ev.Phase+":"+ev.Name)
	}
	assert.Contains(t, names, "B:layout")
	assert.Contains(t, names, "E:layout")
}

func TestCreateFailure(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "x.trace"), "gogui")
	assert.Error(t, err)
}
