package payload_test

import (
	"bytes"
	"testing"

	"github.com/hexrange/hexrange-go/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResult_Message(t *testing.T) {
	within := payload.CheckResult{Range: "7ffd76d19000-7ffd76d3a000", Probe: "7ffd76d35500", Within: true}
	assert.Equal(t, "7ffd76d35500 is within the range 7ffd76d19000-7ffd76d3a000", within.Message())

	outside := payload.CheckResult{Range: "7ffd76d19000-7ffd76d3a000", Probe: "7ffd76d50000"}
	assert.Equal(t, "7ffd76d50000 is not within the range 7ffd76d19000-7ffd76d3a000", outside.Message())
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, payload.Encode(&buf, payload.CheckResult{Range: "10-20", Probe: "15", Within: true}))
	assert.Equal(t, `{"range":"10-20","probe":"15","within":true}`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, payload.Encode(&buf, payload.CheckResult{Range: "10-20", Probe: "zz", Error: "bad probe"}))
	assert.JSONEq(t, `{"range":"10-20","probe":"zz","within":false,"error":"bad probe"}`, buf.String())
}
