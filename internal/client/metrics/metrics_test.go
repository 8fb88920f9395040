package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.AuthAttempt(OpLogin, ResultFailure)
	m.AuthAttempt(OpLogin, ResultFailure)
	m.AuthAttempt(OpSignup, ResultSuccess)
	m.PostCreated()
	m.CorruptState("foorum_posts")

	require.Equal(t, 2.0, testutil.ToFloat64(m.authAttempts.WithLabelValues(OpLogin, ResultFailure)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.authAttempts.WithLabelValues(OpSignup, ResultSuccess)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.postsCreated))
	require.Equal(t, 1.0, testutil.ToFloat64(m.corruptState.WithLabelValues("foorum_posts")))
}

func TestMetrics_Snapshot(t *testing.T) {
	m := New()
	m.AuthAttempt(OpLogin, ResultSuccess)
	m.PostCreated()

	samples, err := m.Snapshot()
	require.NoError(t, err)

	var lines []string
	for _, s := range samples {
		lines = append(lines, s.String())
	}
	require.Equal(t, []string{
		`foorum_auth_attempts_total{op="login",result="success"} 1`,
		`foorum_posts_created_total 1`,
	}, lines)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.AuthAttempt(OpLogin, ResultSuccess)
	m.PostCreated()
	m.CorruptState("k")

	samples, err := m.Snapshot()
	require.NoError(t, err)
	require.Nil(t, samples)
}
