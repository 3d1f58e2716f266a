package planarity_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/Delton71/Gamma-algorithm/planarity"
)

func TestWithLogger_TracesEmbedding(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel, Prefix: "planarity"})

	k4 := planarity.Graph{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}
	ok, err := planarity.IsPlanar(k4, planarity.WithLogger(logger))
	require.NoError(t, err)
	require.True(t, ok)

	out := buf.String()
	require.Contains(t, out, "cycle embedded")
	require.Contains(t, out, "bridge embedded")
	require.Contains(t, out, "verdict")

	buf.Reset()
	k5 := planarity.Graph{{1, 2, 3, 4}, {0, 2, 3, 4}, {0, 1, 3, 4}, {0, 1, 2, 4}, {0, 1, 2, 3}}
	ok, err = planarity.IsPlanar(k5, planarity.WithLogger(logger))
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, buf.String(), "bridge fits no face")
}

func TestWithLogger_InfoLevelIsQuiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	_, err := planarity.IsPlanar(planarity.Graph{{1, 2}, {0, 2}, {0, 1}}, planarity.WithLogger(logger))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
