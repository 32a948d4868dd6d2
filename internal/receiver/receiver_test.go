package receiver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiverOperations(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.DoSomething("Envia un email"))
	require.NoError(t, r.DoSomethingElse("Guarda un reporte"))

	assert.Equal(t, "Receiver: Working on (Envia un email.)\nReceiver: Also working on (Guarda un reporte.)\n", buf.String())
}

func TestReceiversAreIndependent(t *testing.T) {
	var a, b bytes.Buffer
	ra, rb := New(&a), New(&b)

	require.NoError(t, rb.DoSomethingElse("second"))
	require.NoError(t, ra.DoSomething("first"))

	assert.Equal(t, "Receiver: Working on (first.)\n", a.String())
	assert.Equal(t, "Receiver: Also working on (second.)\n", b.String())
}
