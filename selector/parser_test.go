package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.buf.build/protocolbuffers/go/prometheus/prometheus"
)

func labelMap(labels []*prometheus.Label) map[string]string {
	m := map[string]string{}
	for _, l := range labels {
		m[l.Name] = l.Value
	}
	return m
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		selector string
		want     map[string]string
	}{
		{`rpn_result`, map[string]string{"__name__": "rpn_result"}},
		{`rpn_result{}`, map[string]string{"__name__": "rpn_result"}},
		{`rpn_result{job="calc"}`, map[string]string{"__name__": "rpn_result", "job": "calc"}},
		{
			`rpn_result{job="calc", expression="1 2 +", empty=""}`,
			map[string]string{"__name__": "rpn_result", "job": "calc", "expression": "1 2 +", "empty": ""},
		},
		{"# leading comment\nrpn_result{\n  job=\"calc\",\n}", map[string]string{"__name__": "rpn_result", "job": "calc"}},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			labels, err := ParseLabels(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, MetricNameLabel, labels[0].Name)
			assert.Equal(t, tt.want, labelMap(labels))
		})
	}
}

func TestParseLabelsErrors(t *testing.T) {
	for _, selector := range []string{
		``,
		`{job="calc"}`,
		`rpn_result{job}`,
		`rpn_result{job="calc"`,
		`rpn_result{job="calc" instance="a"}`,
		`rpn_result{job=calc}`,
		`rpn_result{job="calc}`,
		`rpn_result{} extra`,
	} {
		_, err := ParseLabels(selector)
		assert.Error(t, err, selector)
	}
}

func TestScanLines(t *testing.T) {
	tokens, err := NewSelectorScanner().Scan("a{\nb=\"c\"}")
	require.NoError(t, err)
	require.Len(t, tokens, 8)
	assert.Equal(t, 0, tokens[0].Line)
	assert.Equal(t, 1, tokens[2].Line)
	assert.Equal(t, "c", tokens[5].StringVal)
}
