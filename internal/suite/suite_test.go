package suite

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cireport/internal/report"
)

type recordingPublisher struct {
	calls []report.Publication
	err   error
}

func (p *recordingPublisher) Publish(_ context.Context, workerID, buildID string, verdict bool, html string) (report.Publication, error) {
	pub := report.Publication{WorkerID: workerID, BuildID: buildID, Record: report.Record{Report: html, Verdict: verdict}}
	p.calls = append(p.calls, pub)
	return pub, p.err
}

func lteInvocation(verdict string) Invocation {
	return Invocation{
		Command: "lte",
		BuildID: "1234",
		Verdict: verdict,
		Args:    map[string]string{"url": "http://example.com/report"},
	}
}

func TestLTEPublishes(t *testing.T) {
	p := &recordingPublisher{}
	var out bytes.Buffer
	require.NoError(t, LTE().Run(context.Background(), &out, lteInvocation("success"), p))

	require.Len(t, p.calls, 1)
	call := p.calls[0]
	assert.Equal(t, "lte_integ_test", call.WorkerID)
	assert.Equal(t, "1234", call.BuildID)
	assert.True(t, call.Record.Verdict)
	assert.Equal(t, report.HTMLURLRedirect("http://example.com/report"), call.Record.Report)

	assert.Equal(t,
		"build_id=1234 cmd=lte url=http://example.com/report verdict=success\n"+
			report.HTMLURLRedirect("http://example.com/report")+"\n",
		out.String())
}

func TestLTEVerdicts(t *testing.T) {
	for _, v := range []string{"Success", "fail", "", "failure"} {
		p := &recordingPublisher{}
		require.NoError(t, LTE().Run(context.Background(), &bytes.Buffer{}, lteInvocation(v), p))
		require.Len(t, p.calls, 1)
		assert.False(t, p.calls[0].Record.Verdict, "%q", v)
	}
}

func TestLTEPropagatesPublishError(t *testing.T) {
	boom := errors.New("write failed")
	err := LTE().Run(context.Background(), &bytes.Buffer{}, lteInvocation("success"), &recordingPublisher{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestRegistry(t *testing.T) {
	r := Default()
	s, ok := r.Get("lte")
	require.True(t, ok)
	assert.Equal(t, "lte_integ_test", s.WorkerID)
	_, ok = r.Get("feg")
	assert.False(t, ok)

	assert.Error(t, r.Register(LTE()), "duplicate name")
	assert.Error(t, r.Register(Suite{Name: "x"}), "missing run")
	for _, name := range []string{"build_id", "verdict", "cmd"} {
		err := r.Register(Suite{
			Name:  "shadow_" + name,
			Flags: []Flag{{Name: name}},
			Run:   runRedirectReport("shadow"),
		})
		assert.Error(t, err, name)
		_, ok := r.Get("shadow_" + name)
		assert.False(t, ok)
	}

	require.NoError(t, r.Register(Suite{Name: "feg", WorkerID: "feg_integ_test", Run: runRedirectReport("feg_integ_test")}))
	names := []string{}
	for _, s := range r.All() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"feg", "lte"}, names)
}
