package draft

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittableDraft(t *testing.T) *Draft {
	t.Helper()
	d := NewStore(time.Hour).New()
	d.SetCustomer(1)
	require.NoError(t, d.AddProduct(productA))
	return d
}

func TestDraft_BeginSubmit(t *testing.T) {
	d := submittableDraft(t)

	assert.Equal(t, StateIdle, d.State())
	require.NoError(t, d.BeginSubmit())
	assert.Equal(t, StateSubmitting, d.State())
}

func TestDraft_BeginSubmit_RefusesReentry(t *testing.T) {
	d := submittableDraft(t)
	require.NoError(t, d.BeginSubmit())

	// A second submit while the first is in flight must be refused.
	err := d.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, StateSubmitting, d.State())
}

func TestDraft_BeginSubmit_RequiresCustomerAndItems(t *testing.T) {
	d := NewStore(time.Hour).New()

	err := d.BeginSubmit()
	assert.ErrorIs(t, err, ErrNotSubmittable)
	assert.Equal(t, StateIdle, d.State())
}

func TestDraft_FinishSubmit_Success(t *testing.T) {
	d := submittableDraft(t)
	require.NoError(t, d.BeginSubmit())

	d.FinishSubmit(nil)

	assert.Equal(t, StateSucceeded, d.State())
	assert.Empty(t, d.LastError())
}

func TestDraft_FinishSubmit_FailureAllowsResubmit(t *testing.T) {
	d := submittableDraft(t)
	require.NoError(t, d.BeginSubmit())

	d.FinishSubmit(errors.New("insufficient stock"))

	assert.Equal(t, StateFailed, d.State())
	assert.Equal(t, "insufficient stock", d.LastError())

	// Failed drafts stay editable and resubmittable.
	require.NoError(t, d.BeginSubmit())
	assert.Equal(t, StateSubmitting, d.State())
	assert.Empty(t, d.LastError())
}

func TestDraft_FinishSubmit_IgnoredWhenNotSubmitting(t *testing.T) {
	d := submittableDraft(t)

	d.FinishSubmit(errors.New("stray callback"))

	assert.Equal(t, StateIdle, d.State())
	assert.Empty(t, d.LastError())
}

func TestSubmissionState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "succeeded", StateSucceeded.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", SubmissionState(42).String())
}
