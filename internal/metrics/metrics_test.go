package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMutationIncrementsByEntityAndOp(t *testing.T) {
	before := testutil.ToFloat64(mutationsTotal.WithLabelValues("campaign", "create"))
	Mutation("campaign", "create")
	Mutation("campaign", "create")
	assert.Equal(t, before+2, testutil.ToFloat64(mutationsTotal.WithLabelValues("campaign", "create")))

	other := testutil.ToFloat64(mutationsTotal.WithLabelValues("keyword", "archive"))
	Mutation("keyword", "archive")
	assert.Equal(t, other+1, testutil.ToFloat64(mutationsTotal.WithLabelValues("keyword", "archive")))
}
